package controllers

import (
	"log"
	"strconv"
	"time"

	"hotel/config"
	"hotel/constants"
	"hotel/dto"
	"hotel/models"
	"hotel/response"
	"hotel/services"
	"hotel/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type RoomController struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Bookings *services.BookingService
}

func NewRoomController(db *gorm.DB, redisCli *redis.Client) *RoomController {
	return &RoomController{
		DB:       db,
		Redis:    redisCli,
		Bookings: services.NewBookingService(db),
	}
}

func toRoomResponse(room models.Room, category models.RoomCategory) dto.RoomResponse {
	return dto.RoomResponse{
		ID:                room.ID,
		RoomNumber:        room.RoomNumber,
		RoomType:          category.Name,
		PricePerNight:     category.BasePrice,
		Capacity:          category.Capacity,
		Description:       room.Description,
		ImageURL:          room.ImageURL,
		Amenities:         room.Amenities,
		MaintenanceStatus: room.MaintenanceStatus,
	}
}

func (rc *RoomController) loadCategoryMap() (map[uint]models.RoomCategory, error) {
	var categories []models.RoomCategory
	if err := rc.DB.Find(&categories).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.RoomCategory, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	return byID, nil
}

// GetRooms liệt kê toàn bộ phòng, có cache Redis
func (rc *RoomController) GetRooms(c *gin.Context) {
	var cached []dto.RoomResponse
	if rc.Redis != nil {
		if err := services.GetFromRedis(config.Ctx, rc.Redis, services.CacheKeyRooms, &cached); err == nil && len(cached) > 0 {
			response.Success(c, cached)
			return
		}
	}

	var rooms []models.Room
	if err := rc.DB.Order("room_number ASC").Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}
	categoryByID, err := rc.loadCategoryMap()
	if err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, toRoomResponse(room, categoryByID[room.CategoryID]))
	}

	if rc.Redis != nil {
		if err := services.SetToRedis(config.Ctx, rc.Redis, services.CacheKeyRooms, result, 10*time.Minute); err != nil {
			log.Printf("không lưu được cache rooms: %v", err)
		}
	}
	response.Success(c, result)
}

// GetAvailableRooms liệt kê từng phòng còn trống cho khoảng nghỉ,
// lọc thêm theo số khách nếu có. Luôn đọc tươi từ DB.
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	checkIn, checkOut, err := validator.ParseDateRange(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		writeAppError(c, err)
		return
	}
	guests := 0
	if g := c.Query("guests"); g != "" {
		if guests, err = strconv.Atoi(g); err != nil || guests < 0 {
			response.BadRequest(c, "Invalid guests value")
			return
		}
	}

	var rooms []models.Room
	if err := rc.DB.Order("room_number ASC").Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}
	categoryByID, err := rc.loadCategoryMap()
	if err != nil {
		response.ServerError(c)
		return
	}

	roomIDs := make([]uint, 0, len(rooms))
	for _, r := range rooms {
		roomIDs = append(roomIDs, r.ID)
	}
	records, bookings, err := services.LoadRoomConflicts(rc.DB, roomIDs, checkIn, checkOut)
	if err != nil {
		writeAppError(c, err)
		return
	}

	eligible := services.EligibleRooms(rooms, records, checkIn, checkOut)
	free := services.RoomsFreeForRange(eligible, bookings, checkIn, checkOut)

	result := make([]dto.RoomResponse, 0, len(free))
	for _, room := range free {
		category := categoryByID[room.CategoryID]
		if guests > 0 && category.Capacity < guests {
			continue
		}
		result = append(result, toRoomResponse(room, category))
	}
	response.Success(c, result)
}

// CheckAvailability tính số phòng trống và ngày kín phòng theo hạng phòng
func (rc *RoomController) CheckAvailability(c *gin.Context) {
	checkIn, checkOut, err := validator.ParseDateRange(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		writeAppError(c, err)
		return
	}

	result, err := rc.Bookings.CategoryAvailability(checkIn, checkOut)
	if err != nil {
		writeAppError(c, err)
		return
	}
	response.Success(c, result)
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "room_number and room_type are required")
		return
	}

	var category models.RoomCategory
	if err := rc.DB.Where("name = ?", req.RoomType).First(&category).Error; err != nil {
		response.BadRequest(c, "Room type not found")
		return
	}

	room := models.Room{
		RoomNumber:        req.RoomNumber,
		CategoryID:        category.ID,
		Description:       req.Description,
		ImageURL:          req.ImageURL,
		Amenities:         req.Amenities,
		MaintenanceStatus: models.MaintenanceStatusOperational,
	}
	if req.MaintenanceStatus != "" {
		room.MaintenanceStatus = req.MaintenanceStatus
	}
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := rc.DB.Create(&room).Error; err != nil {
		response.BadRequest(c, "Room number already exists")
		return
	}

	rc.invalidateRoomCache()
	response.Created(c, toRoomResponse(room, category))
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var room models.Room
	if err := rc.DB.First(&room, id).Error; err != nil {
		response.NotFound(c, "Room not found")
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.RoomNumber != nil {
		room.RoomNumber = *req.RoomNumber
	}
	if req.RoomType != nil {
		var category models.RoomCategory
		if err := rc.DB.Where("name = ?", *req.RoomType).First(&category).Error; err != nil {
			response.BadRequest(c, "Room type not found")
			return
		}
		room.CategoryID = category.ID
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.ImageURL != nil {
		room.ImageURL = *req.ImageURL
	}
	if req.Amenities != nil {
		room.Amenities = *req.Amenities
	}
	if req.MaintenanceStatus != nil {
		room.MaintenanceStatus = *req.MaintenanceStatus
		if err := room.ValidateStatus(); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}
	if err := rc.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	var category models.RoomCategory
	rc.DB.First(&category, room.CategoryID)
	rc.invalidateRoomCache()
	response.Success(c, toRoomResponse(room, category))
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var room models.Room
	if err := rc.DB.First(&room, id).Error; err != nil {
		response.NotFound(c, "Room not found")
		return
	}

	// Không xóa phòng còn booking đang giữ
	var count int64
	rc.DB.Model(&models.Booking{}).
		Where("room_id = ? AND status IN ?", room.ID,
			[]string{models.BookingStatusPending, models.BookingStatusConfirmed}).
		Count(&count)
	if count > 0 {
		response.BadRequest(c, "Cannot delete room with active bookings")
		return
	}

	if err := rc.DB.Delete(&room).Error; err != nil {
		response.ServerError(c)
		return
	}
	rc.invalidateRoomCache()
	response.Success(c, gin.H{"deleted": room.ID})
}

// RoomStatusBoard trạng thái từng phòng cho một ngày: trống, có khách,
// bảo trì hay đóng, kèm booking đang ở nếu có
func (rc *RoomController) RoomStatusBoard(c *gin.Context) {
	date := time.Now().Truncate(24 * time.Hour)
	if q := c.Query("date"); q != "" {
		parsed, err := validator.ParseDate(q)
		if err != nil {
			writeAppError(c, err)
			return
		}
		date = parsed
	}

	var rooms []models.Room
	if err := rc.DB.Order("room_number ASC").Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}
	categoryByID, err := rc.loadCategoryMap()
	if err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	if err := rc.DB.Where("status = ? AND check_in <= ? AND check_out > ?",
		models.BookingStatusConfirmed, date, date).
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}
	bookingByRoom := make(map[uint]models.Booking, len(bookings))
	for _, b := range bookings {
		bookingByRoom[b.RoomID] = b
	}

	var records []models.RoomMaintenance
	if err := rc.DB.Where("status = ?", models.MaintenanceRecordOngoing).Find(&records).Error; err != nil {
		response.ServerError(c)
		return
	}
	nextDay := date.AddDate(0, 0, 1)
	maintainedRooms := make(map[uint]bool)
	for _, m := range records {
		if m.Blocks(date, nextDay) {
			maintainedRooms[m.RoomID] = true
		}
	}

	board := make([]dto.RoomStatusEntry, 0, len(rooms))
	bc := &BookingController{DB: rc.DB}
	for _, room := range rooms {
		entry := dto.RoomStatusEntry{
			Room:   toRoomResponse(room, categoryByID[room.CategoryID]),
			Status: constants.RoomBoardAvailable,
		}
		switch {
		case room.MaintenanceStatus == models.MaintenanceStatusClosed:
			entry.Status = constants.RoomBoardClosed
		case room.MaintenanceStatus == models.MaintenanceStatusMaintenance || maintainedRooms[room.ID]:
			entry.Status = constants.RoomBoardMaintenance
		default:
			if booking, ok := bookingByRoom[room.ID]; ok {
				entry.Status = constants.RoomBoardOccupied
				resp := bc.bookingToResponse(booking)
				entry.CurrentBooking = &resp
			}
		}
		board = append(board, entry)
	}
	response.Success(c, board)
}

// RoomHistory lịch sử booking và bảo trì của một phòng
func (rc *RoomController) RoomHistory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var room models.Room
	if err := rc.DB.First(&room, id).Error; err != nil {
		response.NotFound(c, "Room not found")
		return
	}

	var bookings []models.Booking
	if err := rc.DB.Where("room_id = ?", room.ID).Order("check_in DESC").Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}
	var records []models.RoomMaintenance
	if err := rc.DB.Where("room_id = ?", room.ID).Order("start_date DESC").Find(&records).Error; err != nil {
		response.ServerError(c)
		return
	}

	bc := &BookingController{DB: rc.DB}
	history := dto.RoomHistoryResponse{
		Bookings:    make([]dto.BookingResponse, 0, len(bookings)),
		Maintenance: make([]dto.MaintenanceResponse, 0, len(records)),
	}
	for _, b := range bookings {
		history.Bookings = append(history.Bookings, bc.bookingToResponse(b))
	}
	var category models.RoomCategory
	rc.DB.First(&category, room.CategoryID)
	for _, m := range records {
		history.Maintenance = append(history.Maintenance, toMaintenanceResponse(m, room, category))
	}
	response.Success(c, history)
}

// SearchRooms tìm phòng theo từ khóa tự do (hạng phòng, tiện nghi, mô tả)
func (rc *RoomController) SearchRooms(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "q is required")
		return
	}

	var rooms []models.Room
	if err := rc.DB.Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}
	var categories []models.RoomCategory
	if err := rc.DB.Find(&categories).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := services.SearchRooms(query, rooms, categories)
	response.Success(c, results)
}

func (rc *RoomController) invalidateRoomCache() {
	if rc.Redis == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, rc.Redis, services.CacheKeyRooms); err != nil {
		log.Printf("không xóa được cache rooms: %v", err)
	}
}
