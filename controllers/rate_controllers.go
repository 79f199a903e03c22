package controllers

import (
	"strconv"

	"hotel/dto"
	"hotel/errors"
	"hotel/models"
	"hotel/response"
	"hotel/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RateRuleController struct {
	DB *gorm.DB
}

func NewRateRuleController(db *gorm.DB) *RateRuleController {
	return &RateRuleController{DB: db}
}

func (rc *RateRuleController) GetRateRules(c *gin.Context) {
	query := rc.DB.Order("start_date ASC")
	if active := c.Query("active"); active == "true" {
		query = query.Where("is_active = ?", true)
	}

	var rules []models.RateRule
	if err := query.Find(&rules).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, rules)
}

func (rc *RateRuleController) CreateRateRule(c *gin.Context) {
	var req dto.CreateRateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name, start_date, end_date and rate_multiplier are required")
		return
	}

	startDate, err := validator.ParseDate(req.StartDate)
	if err != nil {
		writeAppError(c, err)
		return
	}
	endDate, err := validator.ParseDate(req.EndDate)
	if err != nil {
		writeAppError(c, err)
		return
	}
	if endDate.Before(startDate) {
		response.BadRequest(c, "end_date must not be before start_date")
		return
	}
	if err := validator.ValidateMultiplier(req.RateMultiplier); err != nil {
		writeAppError(c, err)
		return
	}

	rule := models.RateRule{
		Name:           req.Name,
		StartDate:      startDate,
		EndDate:        endDate,
		RateMultiplier: req.RateMultiplier,
		IsActive:       true,
	}
	if req.RoomCategory != "" {
		if err := rc.checkCategoryExists(req.RoomCategory); err != nil {
			writeAppError(c, err)
			return
		}
		rule.RoomCategory = &req.RoomCategory
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := rc.DB.Create(&rule).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Created(c, rule)
}

func (rc *RateRuleController) UpdateRateRule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid rate rule id")
		return
	}

	var rule models.RateRule
	if err := rc.DB.First(&rule, id).Error; err != nil {
		response.NotFound(c, "Rate rule not found")
		return
	}

	var req dto.UpdateRateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.Name != nil {
		rule.Name = *req.Name
	}
	if req.RoomCategory != nil {
		if *req.RoomCategory == "" {
			rule.RoomCategory = nil
		} else {
			if err := rc.checkCategoryExists(*req.RoomCategory); err != nil {
				writeAppError(c, err)
				return
			}
			rule.RoomCategory = req.RoomCategory
		}
	}
	if req.StartDate != nil {
		startDate, err := validator.ParseDate(*req.StartDate)
		if err != nil {
			writeAppError(c, err)
			return
		}
		rule.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := validator.ParseDate(*req.EndDate)
		if err != nil {
			writeAppError(c, err)
			return
		}
		rule.EndDate = endDate
	}
	if rule.EndDate.Before(rule.StartDate) {
		response.BadRequest(c, "end_date must not be before start_date")
		return
	}
	if req.RateMultiplier != nil {
		if err := validator.ValidateMultiplier(*req.RateMultiplier); err != nil {
			writeAppError(c, err)
			return
		}
		rule.RateMultiplier = *req.RateMultiplier
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := rc.DB.Save(&rule).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, rule)
}

func (rc *RateRuleController) DeleteRateRule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid rate rule id")
		return
	}

	var rule models.RateRule
	if err := rc.DB.First(&rule, id).Error; err != nil {
		response.NotFound(c, "Rate rule not found")
		return
	}
	if err := rc.DB.Delete(&rule).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, gin.H{"deleted": rule.ID})
}

func (rc *RateRuleController) checkCategoryExists(name string) error {
	var count int64
	if err := rc.DB.Model(&models.RoomCategory{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Failed to check category", err)
	}
	if count == 0 {
		return errors.NewAppError(errors.ErrCodeNotFound, "Room type not found", nil)
	}
	return nil
}
