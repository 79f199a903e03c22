package controllers

import (
	"strconv"

	"hotel/constants"
	"hotel/dto"
	"hotel/models"
	"hotel/response"
	"hotel/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HolidayController struct {
	DB *gorm.DB
}

func NewHolidayController(db *gorm.DB) *HolidayController {
	return &HolidayController{DB: db}
}

func (hc *HolidayController) GetHolidays(c *gin.Context) {
	var holidays []models.Holiday
	if err := hc.DB.Order("date ASC").Find(&holidays).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, holidays)
}

func (hc *HolidayController) CreateHoliday(c *gin.Context) {
	var req dto.CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name and date are required")
		return
	}

	date, err := validator.ParseDate(req.Date)
	if err != nil {
		writeAppError(c, err)
		return
	}

	multiplier := req.RateMultiplier
	if multiplier == 0 {
		multiplier = 1
	}
	if err := validator.ValidateMultiplier(multiplier); err != nil {
		writeAppError(c, err)
		return
	}

	holiday := models.Holiday{
		Name:           req.Name,
		Date:           date,
		RateMultiplier: multiplier,
		IsBlackout:     req.IsBlackout,
	}
	if err := hc.DB.Create(&holiday).Error; err != nil {
		response.BadRequest(c, "A holiday already exists on "+date.Format(constants.DateLayout))
		return
	}
	response.Created(c, holiday)
}

func (hc *HolidayController) UpdateHoliday(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid holiday id")
		return
	}

	var holiday models.Holiday
	if err := hc.DB.First(&holiday, id).Error; err != nil {
		response.NotFound(c, "Holiday not found")
		return
	}

	var req dto.UpdateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.Name != nil {
		holiday.Name = *req.Name
	}
	if req.Date != nil {
		date, err := validator.ParseDate(*req.Date)
		if err != nil {
			writeAppError(c, err)
			return
		}
		holiday.Date = date
	}
	if req.RateMultiplier != nil {
		if err := validator.ValidateMultiplier(*req.RateMultiplier); err != nil {
			writeAppError(c, err)
			return
		}
		holiday.RateMultiplier = *req.RateMultiplier
	}
	if req.IsBlackout != nil {
		holiday.IsBlackout = *req.IsBlackout
	}
	if err := hc.DB.Save(&holiday).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, holiday)
}

func (hc *HolidayController) DeleteHoliday(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid holiday id")
		return
	}

	var holiday models.Holiday
	if err := hc.DB.First(&holiday, id).Error; err != nil {
		response.NotFound(c, "Holiday not found")
		return
	}
	if err := hc.DB.Delete(&holiday).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, gin.H{"deleted": holiday.ID})
}
