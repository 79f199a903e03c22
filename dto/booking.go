package dto

// PriceNight là một dòng trong bảng giá theo đêm
type PriceNight struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
	Notes string  `json:"notes"`
}

// CalculatePriceRequest là DTO cho yêu cầu tính giá
type CalculatePriceRequest struct {
	CheckIn   string  `json:"check_in" binding:"required"`
	CheckOut  string  `json:"check_out" binding:"required"`
	RoomPrice float64 `json:"room_price" binding:"required"`
	RoomType  string  `json:"room_type" binding:"required"`
}

// CalculatePriceResponse là DTO cho kết quả tính giá
type CalculatePriceResponse struct {
	TotalPrice float64      `json:"total_price"`
	Breakdown  []PriceNight `json:"breakdown"`
}

// BookingLine là một dòng trong yêu cầu đặt nhiều phòng
type BookingLine struct {
	RoomType string `json:"room_type" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

// CreateMultiBookingRequest là DTO cho yêu cầu đặt nhiều phòng
type CreateMultiBookingRequest struct {
	Rooms         []BookingLine `json:"rooms" binding:"required"`
	CustomerName  string        `json:"customer_name" binding:"required"`
	CustomerEmail string        `json:"customer_email" binding:"required"`
	CustomerPhone string        `json:"customer_phone" binding:"required"`
	Guests        int           `json:"guests"`
	AgentID       *uint         `json:"agent_id"`
}

// CreateBookingRequest là DTO cho yêu cầu đặt một phòng (legacy)
type CreateBookingRequest struct {
	RoomID        uint    `json:"room_id"`
	RoomType      string  `json:"room_type"`
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerEmail string  `json:"customer_email" binding:"required"`
	CustomerPhone string  `json:"customer_phone" binding:"required"`
	CheckIn       string  `json:"check_in" binding:"required"`
	CheckOut      string  `json:"check_out" binding:"required"`
	Guests        int     `json:"guests"`
	TotalPrice    float64 `json:"total_price"`
	AgentID       *uint   `json:"agent_id"`
}

// UpdateBookingRequest là DTO cho yêu cầu duyệt/từ chối/cập nhật booking
type UpdateBookingRequest struct {
	Status         *string `json:"status"`
	RoomID         *uint   `json:"room_id"`
	ReadByEmployee *bool   `json:"read_by_employee"`
	ReceiptURL     *string `json:"receipt_url"`
}

// BookingResponse là DTO cho response của booking
type BookingResponse struct {
	ID             uint    `json:"id"`
	GroupID        string  `json:"group_id"`
	RoomID         uint    `json:"room_id"`
	RoomNumber     string  `json:"room_number"`
	RoomType       string  `json:"room_type"`
	CustomerName   string  `json:"customer_name"`
	CustomerEmail  string  `json:"customer_email"`
	CustomerPhone  string  `json:"customer_phone"`
	CheckIn        string  `json:"check_in"`
	CheckOut       string  `json:"check_out"`
	Guests         int     `json:"guests"`
	TotalPrice     float64 `json:"total_price"`
	Status         string  `json:"status"`
	ReceiptURL     string  `json:"receipt_url,omitempty"`
	AgentID        *uint   `json:"agent_id"`
	AgentName      string  `json:"agent_name,omitempty"`
	BookingType    string  `json:"booking_type"`
	CreatedAt      string  `json:"created_at"`
	ReadByEmployee bool    `json:"read_by_employee"`
}

// MultiBookingResponse là DTO cho kết quả đặt nhiều phòng
type MultiBookingResponse struct {
	Bookings       []BookingResponse `json:"bookings"`
	GroupID        string            `json:"group_id"`
	FirstBookingID uint              `json:"first_booking_id"`
}
