package controllers

import (
	"log"
	"strconv"
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

type CategoryController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewCategoryController(db *gorm.DB, redisCli *redis.Client) *CategoryController {
	return &CategoryController{DB: db, Redis: redisCli}
}

// GetCategories liệt kê hạng phòng, có cache Redis
func (cc *CategoryController) GetCategories(c *gin.Context) {
	var cached []models.RoomCategory
	if cc.Redis != nil {
		if err := services.GetFromRedis(config.Ctx, cc.Redis, services.CacheKeyCategories, &cached); err == nil && len(cached) > 0 {
			response.Success(c, cached)
			return
		}
	}

	var categories []models.RoomCategory
	if err := cc.DB.Order("name ASC").Find(&categories).Error; err != nil {
		response.ServerError(c)
		return
	}

	if cc.Redis != nil {
		if err := services.SetToRedis(config.Ctx, cc.Redis, services.CacheKeyCategories, categories, 30*time.Minute); err != nil {
			log.Printf("không lưu được cache categories: %v", err)
		}
	}
	response.Success(c, categories)
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name, base_price and capacity are required")
		return
	}

	category := models.RoomCategory{
		Name:        req.Name,
		BasePrice:   req.BasePrice,
		Capacity:    req.Capacity,
		Description: req.Description,
	}
	if err := category.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := cc.DB.Create(&category).Error; err != nil {
		response.BadRequest(c, "Category name already exists")
		return
	}
	cc.invalidate()
	response.Created(c, category)
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category id")
		return
	}

	var category models.RoomCategory
	if err := cc.DB.First(&category, id).Error; err != nil {
		response.NotFound(c, "Category not found")
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.BasePrice != nil {
		category.BasePrice = *req.BasePrice
	}
	if req.Capacity != nil {
		category.Capacity = *req.Capacity
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if err := category.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := cc.DB.Save(&category).Error; err != nil {
		response.ServerError(c)
		return
	}
	cc.invalidate()
	response.Success(c, category)
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category id")
		return
	}

	var category models.RoomCategory
	if err := cc.DB.First(&category, id).Error; err != nil {
		response.NotFound(c, "Category not found")
		return
	}

	var count int64
	cc.DB.Model(&models.Room{}).Where("category_id = ?", category.ID).Count(&count)
	if count > 0 {
		response.BadRequest(c, "Cannot delete category that still has rooms")
		return
	}

	if err := cc.DB.Delete(&category).Error; err != nil {
		response.ServerError(c)
		return
	}
	cc.invalidate()
	response.Success(c, gin.H{"deleted": category.ID})
}

func (cc *CategoryController) invalidate() {
	if cc.Redis == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, cc.Redis, services.CacheKeyCategories, services.CacheKeyRooms); err != nil {
		log.Printf("không xóa được cache categories: %v", err)
	}
}
