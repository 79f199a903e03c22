package dto

// CreateHolidayRequest là DTO cho yêu cầu tạo mới holiday
type CreateHolidayRequest struct {
	Name           string  `json:"name" binding:"required"`
	Date           string  `json:"date" binding:"required"`
	RateMultiplier float64 `json:"rate_multiplier"`
	IsBlackout     bool    `json:"is_blackout"`
}

// UpdateHolidayRequest là DTO cho yêu cầu cập nhật holiday
type UpdateHolidayRequest struct {
	Name           *string  `json:"name"`
	Date           *string  `json:"date"`
	RateMultiplier *float64 `json:"rate_multiplier"`
	IsBlackout     *bool    `json:"is_blackout"`
}
