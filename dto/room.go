package dto

// RoomResponse là DTO cho response của room
type RoomResponse struct {
	ID                uint    `json:"id"`
	RoomNumber        string  `json:"room_number"`
	RoomType          string  `json:"room_type"`
	PricePerNight     float64 `json:"price_per_night"`
	Capacity          int     `json:"capacity"`
	Description       string  `json:"description"`
	ImageURL          string  `json:"image_url"`
	Amenities         string  `json:"amenities"`
	MaintenanceStatus string  `json:"maintenance_status"`
}

// RoomWithCurrent đánh dấu phòng đang gán cho booking khi liệt kê phòng trống
type RoomWithCurrent struct {
	RoomResponse
	IsCurrent bool `json:"is_current"`
}

// CategoryAvailabilityResponse là DTO cho một hạng phòng trong kết quả kiểm tra phòng trống
type CategoryAvailabilityResponse struct {
	Category         string   `json:"category"`
	BasePrice        float64  `json:"base_price"`
	Capacity         int      `json:"capacity"`
	AvailableRooms   int      `json:"available_rooms"`
	FullyBookedDates []string `json:"fully_booked_dates"`
}

// CreateRoomRequest là DTO cho yêu cầu tạo phòng
type CreateRoomRequest struct {
	RoomNumber        string `json:"room_number" binding:"required"`
	RoomType          string `json:"room_type" binding:"required"`
	Description       string `json:"description"`
	ImageURL          string `json:"image_url"`
	Amenities         string `json:"amenities"`
	MaintenanceStatus string `json:"maintenance_status"`
}

// UpdateRoomRequest là DTO cho yêu cầu cập nhật phòng
type UpdateRoomRequest struct {
	RoomNumber        *string `json:"room_number"`
	RoomType          *string `json:"room_type"`
	Description       *string `json:"description"`
	ImageURL          *string `json:"image_url"`
	Amenities         *string `json:"amenities"`
	MaintenanceStatus *string `json:"maintenance_status"`
}

// RoomStatusEntry là một dòng trên bảng trạng thái phòng
type RoomStatusEntry struct {
	Room           RoomResponse     `json:"room"`
	Status         string           `json:"status"`
	CurrentBooking *BookingResponse `json:"current_booking"`
}

// RoomSearchResult là một kết quả tìm kiếm phòng kèm điểm phù hợp
type RoomSearchResult struct {
	RoomResponse
	Score int `json:"score"`
}
