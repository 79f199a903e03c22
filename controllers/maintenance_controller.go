package controllers

import (
	"strconv"
	"time"

	"hotel/constants"
	"hotel/dto"
	"hotel/models"
	"hotel/response"
	"hotel/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MaintenanceController struct {
	DB *gorm.DB
}

func NewMaintenanceController(db *gorm.DB) *MaintenanceController {
	return &MaintenanceController{DB: db}
}

func toMaintenanceResponse(m models.RoomMaintenance, room models.Room, category models.RoomCategory) dto.MaintenanceResponse {
	resp := dto.MaintenanceResponse{
		ID:         m.ID,
		RoomID:     m.RoomID,
		RoomNumber: room.RoomNumber,
		RoomType:   category.Name,
		StartDate:  m.StartDate.Format(constants.DateLayout),
		Reason:     m.Reason,
		Status:     m.Status,
		DaysClosed: m.DaysClosed(time.Now()),
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
	}
	if m.EndDate != nil {
		end := m.EndDate.Format(constants.DateLayout)
		resp.EndDate = &end
	}
	return resp
}

func (mc *MaintenanceController) GetMaintenanceRecords(c *gin.Context) {
	query := mc.DB.Order("start_date DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var records []models.RoomMaintenance
	if err := query.Find(&records).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.MaintenanceResponse, 0, len(records))
	for _, m := range records {
		var room models.Room
		var category models.RoomCategory
		mc.DB.First(&room, m.RoomID)
		mc.DB.First(&category, room.CategoryID)
		result = append(result, toMaintenanceResponse(m, room, category))
	}
	response.Success(c, result)
}

// CreateMaintenance mở bản ghi bảo trì và chuyển phòng sang trạng thái maintenance
func (mc *MaintenanceController) CreateMaintenance(c *gin.Context) {
	var req dto.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "room_id and start_date are required")
		return
	}

	startDate, err := validator.ParseDate(req.StartDate)
	if err != nil {
		writeAppError(c, err)
		return
	}

	var room models.Room
	if err := mc.DB.First(&room, req.RoomID).Error; err != nil {
		response.NotFound(c, "Room not found")
		return
	}

	record := models.RoomMaintenance{
		RoomID:    room.ID,
		StartDate: startDate,
		Reason:    req.Reason,
		Status:    models.MaintenanceRecordOngoing,
	}

	err = mc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		room.MaintenanceStatus = models.MaintenanceStatusMaintenance
		return tx.Save(&room).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	var category models.RoomCategory
	mc.DB.First(&category, room.CategoryID)
	response.Created(c, toMaintenanceResponse(record, room, category))
}

// UpdateMaintenance đóng hoặc sửa bản ghi bảo trì.
// Khi bản ghi chuyển sang completed, phòng quay lại operational nếu
// không còn bản ghi ongoing nào khác.
func (mc *MaintenanceController) UpdateMaintenance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid maintenance id")
		return
	}

	var record models.RoomMaintenance
	if err := mc.DB.First(&record, id).Error; err != nil {
		response.NotFound(c, "Maintenance record not found")
		return
	}

	var req dto.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.EndDate != nil {
		endDate, err := validator.ParseDate(*req.EndDate)
		if err != nil {
			writeAppError(c, err)
			return
		}
		if endDate.Before(record.StartDate) {
			response.BadRequest(c, "end_date must not be before start_date")
			return
		}
		record.EndDate = &endDate
	}
	if req.Reason != nil {
		record.Reason = *req.Reason
	}
	if req.Status != nil {
		if *req.Status != models.MaintenanceRecordOngoing && *req.Status != models.MaintenanceRecordCompleted {
			response.BadRequest(c, "status must be ongoing or completed")
			return
		}
		record.Status = *req.Status
	}

	err = mc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&record).Error; err != nil {
			return err
		}
		if record.Status != models.MaintenanceRecordCompleted {
			return nil
		}

		var remaining int64
		if err := tx.Model(&models.RoomMaintenance{}).
			Where("room_id = ? AND status = ? AND id != ?", record.RoomID, models.MaintenanceRecordOngoing, record.ID).
			Count(&remaining).Error; err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}
		return tx.Model(&models.Room{}).
			Where("id = ? AND maintenance_status = ?", record.RoomID, models.MaintenanceStatusMaintenance).
			Update("maintenance_status", models.MaintenanceStatusOperational).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	var room models.Room
	var category models.RoomCategory
	mc.DB.First(&room, record.RoomID)
	mc.DB.First(&category, room.CategoryID)
	response.Success(c, toMaintenanceResponse(record, room, category))
}
