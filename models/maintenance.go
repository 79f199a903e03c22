package models

import (
	"time"
)

// Maintenance record status
const (
	MaintenanceRecordOngoing   = "ongoing"
	MaintenanceRecordCompleted = "completed"
)

type RoomMaintenance struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	RoomID    uint       `json:"room_id" gorm:"index"`
	Room      Room       `json:"-" gorm:"foreignKey:RoomID"`
	StartDate time.Time  `json:"start_date" gorm:"type:date"`
	EndDate   *time.Time `json:"end_date" gorm:"type:date"` // nil = đang bảo trì
	Reason    string     `json:"reason"`
	Status    string     `json:"status" gorm:"default:ongoing"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// Blocks bản ghi bảo trì có chặn khoảng [in, out) không.
// Bản ghi ongoing chưa có EndDate chặn mọi khoảng từ StartDate trở đi.
func (m *RoomMaintenance) Blocks(in, out time.Time) bool {
	if m.Status != MaintenanceRecordOngoing {
		return false
	}
	if !m.StartDate.Before(out) {
		return false
	}
	return m.EndDate == nil || m.EndDate.After(in)
}

// DaysClosed số ngày phòng đã đóng vì bản ghi này
func (m *RoomMaintenance) DaysClosed(now time.Time) int {
	if m.EndDate != nil {
		return int(m.EndDate.Sub(m.StartDate).Hours() / 24)
	}
	if m.Status == MaintenanceRecordOngoing {
		return int(now.Sub(m.StartDate).Hours() / 24)
	}
	return 0
}
