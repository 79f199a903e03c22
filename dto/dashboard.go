package dto

// DashboardStats là DTO cho số liệu dashboard của nhân viên
type DashboardStats struct {
	TotalBookings     int64   `json:"total_bookings"`
	PendingBookings   int64   `json:"pending_bookings"`
	ConfirmedBookings int64   `json:"confirmed_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
}

// UnreadCount là DTO cho số booking nhân viên chưa đọc
type UnreadCount struct {
	Count int64 `json:"count"`
}

// RoomHistoryResponse là DTO cho lịch sử phòng theo ngày
type RoomHistoryResponse struct {
	Bookings    []BookingResponse     `json:"bookings"`
	Maintenance []MaintenanceResponse `json:"maintenance"`
}
