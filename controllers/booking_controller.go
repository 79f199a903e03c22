package controllers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"hotel/config"
	"hotel/constants"
	"hotel/dto"
	"hotel/errors"
	"hotel/models"
	"hotel/response"
	"hotel/services"
	"hotel/services/notification"
	"hotel/validator"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type BookingController struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Notifier notification.Service
	Bookings *services.BookingService
}

func NewBookingController(db *gorm.DB, redisCli *redis.Client, m *melody.Melody) *BookingController {
	return &BookingController{
		DB:       db,
		Redis:    redisCli,
		Notifier: notification.NewMelodyService(m),
		Bookings: services.NewBookingService(db),
	}
}

// Ánh xạ mã lỗi AppError sang HTTP status
func writeAppError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		log.Printf("unexpected error: %v", err)
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeNotFound, errors.ErrCodeDBNotFound, errors.ErrCodeUserNotFound:
		response.NotFound(c, appErr.Message)
	case errors.ErrCodeConcurrencyConflict:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeDBError:
		log.Printf("database error: %v", appErr.Err)
		response.ServerError(c)
	default:
		response.BadRequest(c, appErr.Message)
	}
}

func (bc *BookingController) bookingToResponse(booking models.Booking) dto.BookingResponse {
	var room models.Room
	var category models.RoomCategory
	bc.DB.First(&room, booking.RoomID)
	bc.DB.First(&category, booking.CategoryID)

	resp := dto.BookingResponse{
		ID:             booking.ID,
		GroupID:        booking.GroupID,
		RoomID:         booking.RoomID,
		RoomNumber:     room.RoomNumber,
		RoomType:       category.Name,
		CustomerName:   booking.CustomerName,
		CustomerEmail:  booking.CustomerEmail,
		CustomerPhone:  booking.CustomerPhone,
		CheckIn:        booking.CheckIn.Format(constants.DateLayout),
		CheckOut:       booking.CheckOut.Format(constants.DateLayout),
		Guests:         booking.Guests,
		TotalPrice:     booking.TotalPrice,
		Status:         booking.Status,
		ReceiptURL:     booking.ReceiptURL,
		AgentID:        booking.AgentID,
		BookingType:    "online",
		CreatedAt:      booking.CreatedAt.Format(time.RFC3339),
		ReadByEmployee: booking.ReadByEmployee,
	}
	if booking.AgentID != nil {
		var agent models.Agent
		if err := bc.DB.First(&agent, *booking.AgentID).Error; err == nil {
			resp.AgentName = agent.Name
			resp.BookingType = "agent"
		}
	}
	return resp
}

// CalculatePrice tính giá trước cho một khoảng nghỉ, không ghi gì vào DB
func (bc *BookingController) CalculatePrice(c *gin.Context) {
	var req dto.CalculatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "check_in, check_out, room_price and room_type are required")
		return
	}

	checkIn, checkOut, err := validator.ParseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		writeAppError(c, err)
		return
	}

	var holidays []models.Holiday
	if err := bc.DB.Find(&holidays).Error; err != nil {
		response.ServerError(c)
		return
	}
	var rules []models.RateRule
	if err := bc.DB.Where("is_active = ?", true).Find(&rules).Error; err != nil {
		response.ServerError(c)
		return
	}

	total, breakdown, err := services.CalculatePrice(checkIn, checkOut, req.RoomPrice, req.RoomType, holidays, rules)
	if err != nil {
		writeAppError(c, err)
		return
	}

	response.Success(c, dto.CalculatePriceResponse{
		TotalPrice: total,
		Breakdown:  breakdown,
	})
}

// CreateMultiBooking đặt nhiều phòng trong một yêu cầu nguyên tử
func (bc *BookingController) CreateMultiBooking(c *gin.Context) {
	var req dto.CreateMultiBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "rooms and customer info are required")
		return
	}
	if err := validator.ValidateCustomer(req.CustomerName, req.CustomerEmail, req.CustomerPhone); err != nil {
		writeAppError(c, err)
		return
	}

	lines := make([]services.AllocationLine, 0, len(req.Rooms))
	for _, line := range req.Rooms {
		checkIn, checkOut, err := validator.ParseDateRange(line.CheckIn, line.CheckOut)
		if err != nil {
			writeAppError(c, err)
			return
		}
		lines = append(lines, services.AllocationLine{
			Category: line.RoomType,
			Quantity: line.Quantity,
			CheckIn:  checkIn,
			CheckOut: checkOut,
		})
	}

	created, groupID, err := bc.Bookings.CreateMultiBooking(lines, services.CustomerInfo{
		Name:    req.CustomerName,
		Email:   req.CustomerEmail,
		Phone:   req.CustomerPhone,
		Guests:  req.Guests,
		AgentID: req.AgentID,
	})
	if err != nil {
		writeAppError(c, err)
		return
	}

	bookings := make([]dto.BookingResponse, 0, len(created))
	for _, b := range created {
		bookings = append(bookings, bc.bookingToResponse(b))
	}

	bc.notifyAndMail(created[0], "new booking received")
	bc.invalidateCaches()

	response.Created(c, dto.MultiBookingResponse{
		Bookings:       bookings,
		GroupID:        groupID,
		FirstBookingID: created[0].ID,
	})
}

// CreateBooking đặt một phòng (giữ cho client cũ chỉ gửi một dòng)
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "customer info, check_in and check_out are required")
		return
	}
	if req.RoomID == 0 && req.RoomType == "" {
		response.BadRequest(c, "room_id or room_type is required")
		return
	}
	if err := validator.ValidateCustomer(req.CustomerName, req.CustomerEmail, req.CustomerPhone); err != nil {
		writeAppError(c, err)
		return
	}

	checkIn, checkOut, err := validator.ParseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		writeAppError(c, err)
		return
	}

	booking, err := bc.Bookings.CreateSingleBooking(req.RoomID, req.RoomType, checkIn, checkOut, services.CustomerInfo{
		Name:    req.CustomerName,
		Email:   req.CustomerEmail,
		Phone:   req.CustomerPhone,
		Guests:  req.Guests,
		AgentID: req.AgentID,
	})
	if err != nil {
		writeAppError(c, err)
		return
	}

	bc.notifyAndMail(*booking, "new booking received")
	bc.invalidateCaches()

	response.Created(c, bc.bookingToResponse(*booking))
}

// GetBookings liệt kê booking, lọc được theo status và group_id
func (bc *BookingController) GetBookings(c *gin.Context) {
	query := bc.DB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if groupID := c.Query("group_id"); groupID != "" {
		query = query.Where("group_id = ?", groupID)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, bc.bookingToResponse(b))
	}
	response.Success(c, result)
}

func (bc *BookingController) GetBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	var booking models.Booking
	if err := bc.DB.First(&booking, id).Error; err != nil {
		response.NotFound(c, "Booking not found")
		return
	}
	response.Success(c, bc.bookingToResponse(booking))
}

// UpdateBooking duyệt/từ chối booking hoặc cập nhật cờ đã đọc, link biên lai.
// status=confirmed kiểm tra lại phòng trước khi chốt; phòng bị chiếm trả 409
// và booking giữ nguyên pending để nhân viên chọn phòng khác.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.Status != nil {
		switch *req.Status {
		case models.BookingStatusConfirmed:
			roomID := uint(0)
			if req.RoomID != nil {
				roomID = *req.RoomID
			}
			booking, err := bc.Bookings.Approve(uint(id), roomID)
			if err != nil {
				writeAppError(c, err)
				return
			}

			var room models.Room
			var category models.RoomCategory
			bc.DB.First(&room, booking.RoomID)
			bc.DB.First(&category, booking.CategoryID)
			if err := services.SendConfirmationEmail(*booking, room.RoomNumber, category.Name); err != nil {
				log.Printf("không gửi được email xác nhận cho booking %d: %v", booking.ID, err)
			}
			bc.notify(*booking, "booking confirmed")
			bc.invalidateCaches()

			response.Success(c, bc.bookingToResponse(*booking))
			return

		case models.BookingStatusCancelled:
			booking, err := bc.Bookings.Reject(uint(id))
			if err != nil {
				writeAppError(c, err)
				return
			}
			bc.notify(*booking, "booking cancelled")
			bc.invalidateCaches()
			response.Success(c, bc.bookingToResponse(*booking))
			return

		default:
			response.BadRequest(c, "status must be confirmed or cancelled")
			return
		}
	}

	var booking models.Booking
	if err := bc.DB.First(&booking, id).Error; err != nil {
		response.NotFound(c, "Booking not found")
		return
	}
	if req.ReadByEmployee != nil {
		booking.ReadByEmployee = *req.ReadByEmployee
	}
	if req.ReceiptURL != nil {
		booking.ReceiptURL = *req.ReceiptURL
	}
	if err := bc.DB.Save(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, bc.bookingToResponse(booking))
}

// AvailableRoomsForBooking liệt kê phòng cùng hạng còn trống cho booking,
// kèm phòng đang gán (is_current) để nhân viên đổi phòng khi duyệt
func (bc *BookingController) AvailableRoomsForBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	rooms, err := bc.Bookings.AvailableRoomsFor(uint(id))
	if err != nil {
		writeAppError(c, err)
		return
	}
	response.Success(c, rooms)
}

// UploadReceipt nhận file biên lai chuyển khoản, đẩy lên Cloudinary
// và lưu link vào booking
func (bc *BookingController) UploadReceipt(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	var booking models.Booking
	if err := bc.DB.First(&booking, id).Error; err != nil {
		response.NotFound(c, "Booking not found")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file uploaded")
		return
	}
	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Cannot open uploaded file")
		return
	}
	defer src.Close()

	resp, err := config.Cloudinary.Upload.Upload(context.Background(), src, uploader.UploadParams{Folder: "receipts"})
	if err != nil {
		log.Printf("upload biên lai thất bại: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	booking.ReceiptURL = resp.SecureURL
	if err := bc.DB.Save(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	bc.notify(booking, "payment receipt uploaded")
	response.Success(c, gin.H{"receipt_url": booking.ReceiptURL})
}

// UnreadNotifications đếm booking nhân viên chưa đọc
func (bc *BookingController) UnreadNotifications(c *gin.Context) {
	var count int64
	if err := bc.DB.Model(&models.Booking{}).
		Where("read_by_employee = ?", false).
		Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, dto.UnreadCount{Count: count})
}

func (bc *BookingController) notify(booking models.Booking, event string) {
	msg := notification.NewMessageBuilder(booking.ID, booking.CustomerName, event).Build()
	if err := bc.Notifier.SendMessage(msg); err != nil {
		log.Printf("không broadcast được thông báo: %v", err)
	}
}

func (bc *BookingController) notifyAndMail(booking models.Booking, event string) {
	bc.notify(booking, event)

	var room models.Room
	var category models.RoomCategory
	bc.DB.First(&room, booking.RoomID)
	bc.DB.First(&category, booking.CategoryID)
	if err := services.SendBookingEmail(booking, room.RoomNumber, category.Name); err != nil {
		log.Printf("không gửi được email cho booking %d: %v", booking.ID, err)
	}
}

func (bc *BookingController) invalidateCaches() {
	if bc.Redis == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, bc.Redis, services.CacheKeyRooms, services.CacheKeyStats); err != nil {
		log.Printf("không xóa được cache: %v", err)
	}
}
