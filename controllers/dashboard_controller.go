package controllers

import (
	"log"
	"time"

	"hotel/config"
	"hotel/dto"
	"hotel/models"
	"hotel/response"
	"hotel/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewDashboardController(db *gorm.DB, redisCli *redis.Client) *DashboardController {
	return &DashboardController{DB: db, Redis: redisCli}
}

// GetStats số liệu tổng quan cho nhân viên: tổng đơn, đơn chờ duyệt,
// đơn đã xác nhận và doanh thu từ các đơn đã xác nhận
func (dc *DashboardController) GetStats(c *gin.Context) {
	var cached dto.DashboardStats
	if dc.Redis != nil {
		if err := services.GetFromRedis(config.Ctx, dc.Redis, services.CacheKeyStats, &cached); err == nil && cached.TotalBookings > 0 {
			response.Success(c, cached)
			return
		}
	}

	var stats dto.DashboardStats
	if err := dc.DB.Model(&models.Booking{}).Count(&stats.TotalBookings).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := dc.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusPending).
		Count(&stats.PendingBookings).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := dc.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusConfirmed).
		Count(&stats.ConfirmedBookings).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := dc.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusConfirmed).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		response.ServerError(c)
		return
	}

	if dc.Redis != nil {
		if err := services.SetToRedis(config.Ctx, dc.Redis, services.CacheKeyStats, stats, 5*time.Minute); err != nil {
			log.Printf("không lưu được cache stats: %v", err)
		}
	}
	response.Success(c, stats)
}
