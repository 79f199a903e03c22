package models

import (
	"time"
)

// Booking status constants
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	GroupID        string       `json:"group_id" gorm:"index"`
	RoomID         uint         `json:"room_id" gorm:"index"`
	Room           Room         `json:"-" gorm:"foreignKey:RoomID"`
	CategoryID     uint         `json:"category_id"`
	Category       RoomCategory `json:"-" gorm:"foreignKey:CategoryID"`
	AgentID        *uint        `json:"agent_id"`
	Agent          *Agent       `json:"-" gorm:"foreignKey:AgentID"`
	CustomerName   string       `json:"customer_name"`
	CustomerEmail  string       `json:"customer_email"`
	CustomerPhone  string       `json:"customer_phone"`
	CheckIn        time.Time    `json:"check_in" gorm:"type:date;index"`
	CheckOut       time.Time    `json:"check_out" gorm:"type:date;index"`
	Guests         int          `json:"guests"`
	TotalPrice     float64      `json:"total_price"`
	Status         string       `json:"status" gorm:"default:pending;index"`
	ReceiptURL     string       `json:"receipt_url"`
	ReadByEmployee bool         `json:"read_by_employee"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

// OccupiesInventory booking đang giữ phòng hay không.
// Chỉ pending và confirmed mới được tính khi xét trùng lịch.
func (b *Booking) OccupiesInventory() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// Overlaps kiểm tra [CheckIn, CheckOut) có giao với [in, out) không
func (b *Booking) Overlaps(in, out time.Time) bool {
	return b.CheckIn.Before(out) && b.CheckOut.After(in)
}

// Contains kiểm tra ngày d có nằm trong [CheckIn, CheckOut) không
func (b *Booking) Contains(d time.Time) bool {
	return !d.Before(b.CheckIn) && d.Before(b.CheckOut)
}
