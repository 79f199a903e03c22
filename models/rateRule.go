package models

import (
	"time"
)

type RateRule struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name"`
	RoomCategory   *string   `json:"room_category"` // nil = áp dụng cho mọi hạng phòng
	StartDate      time.Time `json:"start_date" gorm:"type:date"`
	EndDate        time.Time `json:"end_date" gorm:"type:date"`
	RateMultiplier float64   `json:"rate_multiplier"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// AppliesTo rule có hiệu lực cho hạng phòng và ngày d không.
// Khoảng [StartDate, EndDate] tính cả hai đầu.
func (r *RateRule) AppliesTo(category string, d time.Time) bool {
	if !r.IsActive {
		return false
	}
	if r.RoomCategory != nil && *r.RoomCategory != category {
		return false
	}
	return !d.Before(r.StartDate) && !d.After(r.EndDate)
}
