package models

import (
	"time"
)

// Agent status constants
const (
	AgentStatusPending   = "pending"
	AgentStatusApproved  = "approved"
	AgentStatusSuspended = "suspended"
)

type Agent struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Status    string    `json:"status" gorm:"default:pending"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
