package dto

// CreateAgentRequest là DTO cho yêu cầu tạo đại lý
type CreateAgentRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Company string `json:"company"`
}

// UpdateAgentRequest là DTO cho yêu cầu cập nhật đại lý
type UpdateAgentRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Status  *string `json:"status"`
}
