package models

import (
	"time"
)

type Holiday struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name"`
	Date           time.Time `json:"date" gorm:"type:date;uniqueIndex"`
	RateMultiplier float64   `json:"rate_multiplier" gorm:"default:1"` // Hệ số phụ thu cho ngày lễ
	IsBlackout     bool      `json:"is_blackout" gorm:"default:false"` // Ngày cấm nhận đặt phòng
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
