package controllers

import (
	"strconv"

	"hotel/dto"
	"hotel/models"
	"hotel/response"
	"hotel/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AgentController struct {
	DB *gorm.DB
}

func NewAgentController(db *gorm.DB) *AgentController {
	return &AgentController{DB: db}
}

func (ac *AgentController) GetAgents(c *gin.Context) {
	query := ac.DB.Order("name ASC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var agents []models.Agent
	if err := query.Find(&agents).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, agents)
}

func (ac *AgentController) GetAgent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid agent id")
		return
	}

	var agent models.Agent
	if err := ac.DB.First(&agent, id).Error; err != nil {
		response.NotFound(c, "Agent not found")
		return
	}

	// Kèm các booking đại lý này đã đặt
	var bookings []models.Booking
	ac.DB.Where("agent_id = ?", agent.ID).Order("created_at DESC").Find(&bookings)

	bc := &BookingController{DB: ac.DB}
	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		bookingResponses = append(bookingResponses, bc.bookingToResponse(b))
	}

	response.Success(c, gin.H{
		"agent":    agent,
		"bookings": bookingResponses,
	})
}

func (ac *AgentController) CreateAgent(c *gin.Context) {
	var req dto.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name, email and phone are required")
		return
	}
	if err := validator.ValidateCustomer(req.Name, req.Email, req.Phone); err != nil {
		writeAppError(c, err)
		return
	}

	agent := models.Agent{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Status:  models.AgentStatusPending,
	}
	if err := ac.DB.Create(&agent).Error; err != nil {
		response.BadRequest(c, "Agent email already exists")
		return
	}
	response.Created(c, agent)
}

func (ac *AgentController) UpdateAgent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid agent id")
		return
	}

	var agent models.Agent
	if err := ac.DB.First(&agent, id).Error; err != nil {
		response.NotFound(c, "Agent not found")
		return
	}

	var req dto.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.Name != nil {
		agent.Name = *req.Name
	}
	if req.Email != nil {
		agent.Email = *req.Email
	}
	if req.Phone != nil {
		agent.Phone = *req.Phone
	}
	if req.Company != nil {
		agent.Company = *req.Company
	}
	if req.Status != nil {
		switch *req.Status {
		case models.AgentStatusPending, models.AgentStatusApproved, models.AgentStatusSuspended:
			agent.Status = *req.Status
		default:
			response.BadRequest(c, "status must be pending, approved or suspended")
			return
		}
	}

	if err := ac.DB.Save(&agent).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, agent)
}

func (ac *AgentController) DeleteAgent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid agent id")
		return
	}

	var agent models.Agent
	if err := ac.DB.First(&agent, id).Error; err != nil {
		response.NotFound(c, "Agent not found")
		return
	}

	var count int64
	ac.DB.Model(&models.Booking{}).
		Where("agent_id = ? AND status IN ?", agent.ID,
			[]string{models.BookingStatusPending, models.BookingStatusConfirmed}).
		Count(&count)
	if count > 0 {
		response.BadRequest(c, "Cannot delete agent with active bookings")
		return
	}

	if err := ac.DB.Delete(&agent).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, gin.H{"deleted": agent.ID})
}
