package models

import (
	"fmt"
	"time"
)

// Trạng thái bảo trì của phòng
const (
	MaintenanceStatusOperational = "operational"
	MaintenanceStatusMaintenance = "maintenance"
	MaintenanceStatusClosed      = "closed"
)

type Room struct {
	ID                 uint              `json:"id" gorm:"primaryKey"`
	RoomNumber         string            `json:"room_number" gorm:"uniqueIndex"`
	CategoryID         uint              `json:"category_id"`
	Description        string            `json:"description"`
	ImageURL           string            `json:"image_url"`
	Amenities          string            `json:"amenities"`
	MaintenanceStatus  string            `json:"maintenance_status" gorm:"default:operational"`
	CreatedAt          time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
	Category           RoomCategory      `json:"-" gorm:"foreignKey:CategoryID"`
	MaintenanceRecords []RoomMaintenance `json:"-" gorm:"foreignKey:RoomID"`
}

func (r *Room) ValidateStatus() error {
	switch r.MaintenanceStatus {
	case MaintenanceStatusOperational, MaintenanceStatusMaintenance, MaintenanceStatusClosed:
		return nil
	}
	return fmt.Errorf("invalid maintenance status: %s", r.MaintenanceStatus)
}

// IsBookable phòng có nhận đặt hay không (chưa xét các bản ghi bảo trì theo ngày)
func (r *Room) IsBookable() bool {
	return r.MaintenanceStatus == MaintenanceStatusOperational
}
