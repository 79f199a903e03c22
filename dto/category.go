package dto

// CreateCategoryRequest là DTO cho yêu cầu tạo hạng phòng
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	BasePrice   float64 `json:"base_price" binding:"required"`
	Capacity    int     `json:"capacity" binding:"required"`
	Description string  `json:"description"`
}

// UpdateCategoryRequest là DTO cho yêu cầu cập nhật hạng phòng
type UpdateCategoryRequest struct {
	Name        *string  `json:"name"`
	BasePrice   *float64 `json:"base_price"`
	Capacity    *int     `json:"capacity"`
	Description *string  `json:"description"`
}
