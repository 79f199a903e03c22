package dto

// CreateMaintenanceRequest là DTO cho yêu cầu mở bản ghi bảo trì
type CreateMaintenanceRequest struct {
	RoomID    uint   `json:"room_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	Reason    string `json:"reason"`
}

// UpdateMaintenanceRequest là DTO cho yêu cầu cập nhật bản ghi bảo trì
type UpdateMaintenanceRequest struct {
	EndDate *string `json:"end_date"`
	Reason  *string `json:"reason"`
	Status  *string `json:"status"`
}

// MaintenanceResponse là DTO cho response của bản ghi bảo trì
type MaintenanceResponse struct {
	ID         uint    `json:"id"`
	RoomID     uint    `json:"room_id"`
	RoomNumber string  `json:"room_number"`
	RoomType   string  `json:"room_type"`
	StartDate  string  `json:"start_date"`
	EndDate    *string `json:"end_date"`
	Reason     string  `json:"reason"`
	Status     string  `json:"status"`
	DaysClosed int     `json:"days_closed"`
	CreatedAt  string  `json:"created_at"`
}
