package dto

// CreateRateRuleRequest là DTO cho yêu cầu tạo rate rule
type CreateRateRuleRequest struct {
	Name           string  `json:"name" binding:"required"`
	RoomCategory   string  `json:"room_category"` // rỗng = áp dụng cho mọi hạng phòng
	StartDate      string  `json:"start_date" binding:"required"`
	EndDate        string  `json:"end_date" binding:"required"`
	RateMultiplier float64 `json:"rate_multiplier" binding:"required"`
	IsActive       *bool   `json:"is_active"`
}

// UpdateRateRuleRequest là DTO cho yêu cầu cập nhật rate rule
type UpdateRateRuleRequest struct {
	Name           *string  `json:"name"`
	RoomCategory   *string  `json:"room_category"`
	StartDate      *string  `json:"start_date"`
	EndDate        *string  `json:"end_date"`
	RateMultiplier *float64 `json:"rate_multiplier"`
	IsActive       *bool    `json:"is_active"`
}
