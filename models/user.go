package models

import (
	"time"
)

// User roles
const (
	RoleGuest    = 0
	RoleAgent    = 1
	RoleEmployee = 2
	RoleAdmin    = 3
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Password  string    `json:"-"`
	Phone     string    `json:"phone"`
	Role      int       `json:"role" gorm:"default:0"`
	Status    int       `json:"status" gorm:"default:1"`
	AgentID   *uint     `json:"agent_id"` // tài khoản đại lý trỏ về hồ sơ Agent
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
