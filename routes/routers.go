package routes

import (
	"hotel/controllers"
	middlewares "hotel/middleware"
	"hotel/models"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	bookingController := controllers.NewBookingController(db, redisCli, m)
	roomController := controllers.NewRoomController(db, redisCli)
	categoryController := controllers.NewCategoryController(db, redisCli)
	holidayController := controllers.NewHolidayController(db)
	rateRuleController := controllers.NewRateRuleController(db)
	maintenanceController := controllers.NewMaintenanceController(db)
	agentController := controllers.NewAgentController(db)
	dashboardController := controllers.NewDashboardController(db, redisCli)
	authController := controllers.NewAuthController(db)

	staffOnly := middlewares.AuthMiddleware(models.RoleEmployee, models.RoleAdmin)
	adminOnly := middlewares.AuthMiddleware(models.RoleAdmin)

	api := router.Group("/api")
	api.Use(middlewares.SessionMiddleware())

	api.POST("/auth/register", authController.Register)
	api.POST("/auth/login", authController.Login)
	api.POST("/auth/google", authController.AuthGoogle)
	api.GET("/profile", middlewares.AuthMiddleware(), authController.GetProfile)

	// Tra cứu công khai cho trang đặt phòng
	api.POST("/calculate-price", bookingController.CalculatePrice)
	api.GET("/availability", roomController.CheckAvailability)
	api.GET("/rooms", roomController.GetRooms)
	api.GET("/available-rooms", roomController.GetAvailableRooms)
	api.GET("/search", roomController.SearchRooms)
	api.GET("/categories", categoryController.GetCategories)
	api.GET("/holidays", holidayController.GetHolidays)

	// Đặt phòng của khách
	api.POST("/bookings", bookingController.CreateBooking)
	api.POST("/multi-bookings", bookingController.CreateMultiBooking)
	api.GET("/bookings/:id", bookingController.GetBooking)
	api.POST("/bookings/:id/receipt", bookingController.UploadReceipt)

	// Nghiệp vụ lễ tân: duyệt đơn, đổi phòng, bảng trạng thái
	api.GET("/bookings", staffOnly, bookingController.GetBookings)
	api.PUT("/bookings/:id", staffOnly, bookingController.UpdateBooking)
	api.GET("/bookings/:id/available-rooms", staffOnly, bookingController.AvailableRoomsForBooking)
	api.GET("/notifications/unread", staffOnly, bookingController.UnreadNotifications)
	api.GET("/dashboard/stats", staffOnly, dashboardController.GetStats)
	api.GET("/room-status", staffOnly, roomController.RoomStatusBoard)
	api.GET("/rooms/:id/history", staffOnly, roomController.RoomHistory)

	// Quản trị danh mục
	api.POST("/rooms", staffOnly, roomController.CreateRoom)
	api.PUT("/rooms/:id", staffOnly, roomController.UpdateRoom)
	api.DELETE("/rooms/:id", adminOnly, roomController.DeleteRoom)

	api.POST("/categories", staffOnly, categoryController.CreateCategory)
	api.PUT("/categories/:id", staffOnly, categoryController.UpdateCategory)
	api.DELETE("/categories/:id", adminOnly, categoryController.DeleteCategory)

	api.POST("/holidays", staffOnly, holidayController.CreateHoliday)
	api.PUT("/holidays/:id", staffOnly, holidayController.UpdateHoliday)
	api.DELETE("/holidays/:id", staffOnly, holidayController.DeleteHoliday)

	api.GET("/rate-rules", staffOnly, rateRuleController.GetRateRules)
	api.POST("/rate-rules", staffOnly, rateRuleController.CreateRateRule)
	api.PUT("/rate-rules/:id", staffOnly, rateRuleController.UpdateRateRule)
	api.DELETE("/rate-rules/:id", staffOnly, rateRuleController.DeleteRateRule)

	api.GET("/maintenance", staffOnly, maintenanceController.GetMaintenanceRecords)
	api.POST("/maintenance", staffOnly, maintenanceController.CreateMaintenance)
	api.PUT("/maintenance/:id", staffOnly, maintenanceController.UpdateMaintenance)

	api.GET("/agents", staffOnly, agentController.GetAgents)
	api.GET("/agents/:id", staffOnly, agentController.GetAgent)
	api.POST("/agents", agentController.CreateAgent)
	api.PUT("/agents/:id", staffOnly, agentController.UpdateAgent)
	api.DELETE("/agents/:id", adminOnly, agentController.DeleteAgent)
}
