package services

import (
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"hotel/builders"
	"hotel/dto"
	"hotel/errors"
	"hotel/models"
	"hotel/services/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AllocationLine là một dòng (hạng phòng, số lượng, khoảng nghỉ) trong yêu cầu đặt phòng
type AllocationLine struct {
	Category string
	Quantity int
	CheckIn  time.Time
	CheckOut time.Time
}

// CustomerInfo thông tin khách cho một yêu cầu đặt phòng
type CustomerInfo struct {
	Name    string
	Email   string
	Phone   string
	Guests  int
	AgentID *uint
}

// BookingService xử lý giữ phòng và vòng đời booking.
// Mọi thao tác ghi chạy trong một transaction serializable với khóa dòng
// trên các phòng ứng viên: hai yêu cầu tranh nhau cùng một phòng/khoảng ngày
// thì đúng một yêu cầu thành công, yêu cầu còn lại nhận lỗi conflict.
type BookingService struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewBookingService tạo instance mới của BookingService
func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{
		db:     db,
		logger: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

var serializableTx = &sql.TxOptions{Isolation: sql.LevelSerializable}

// CreateMultiBooking giữ phòng cho nhiều dòng trong một đơn vị nguyên tử:
// bất kỳ dòng nào thiếu phòng thì toàn bộ yêu cầu bị hủy, không ghi dòng nào.
// Phòng được chọn theo room_number tăng dần để kết quả tái lập được.
func (s *BookingService) CreateMultiBooking(lines []AllocationLine, customer CustomerInfo) ([]models.Booking, string, error) {
	if len(lines) == 0 {
		return nil, "", errors.NewAppError(errors.ErrCodeValidation, "At least one room line is required", nil)
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, "", errors.NewAppError(errors.ErrCodeValidation, "Room quantity must be positive", nil)
		}
		if !line.CheckOut.After(line.CheckIn) {
			return nil, "", errors.NewAppError(errors.ErrCodeValidation, "Check-out date must be after check-in date", nil)
		}
	}

	groupID := uuid.NewString()
	var created []models.Booking

	err := s.db.Transaction(func(tx *gorm.DB) error {
		holidays, rules, err := loadPricingTables(tx)
		if err != nil {
			return err
		}

		for _, line := range lines {
			category, rooms, bookings, records, err := s.loadCategoryInventory(tx, line.Category, line.CheckIn, line.CheckOut)
			if err != nil {
				return err
			}

			if customer.Guests > category.Capacity {
				return errors.NewAppError(errors.ErrCodeValidation,
					fmt.Sprintf("Guest count exceeds %s capacity of %d", category.Name, category.Capacity), nil)
			}

			// Đọc tươi trong transaction, không dùng snapshot cache
			eligible := EligibleRooms(rooms, records, line.CheckIn, line.CheckOut)
			available, _ := RangeAvailability(eligible, bookings, line.CheckIn, line.CheckOut)
			freeRooms := RoomsFreeForRange(eligible, bookings, line.CheckIn, line.CheckOut)
			if available < line.Quantity || len(freeRooms) < line.Quantity {
				return errors.NewAppError(errors.ErrCodeAvailabilityConflict,
					fmt.Sprintf("Not enough %s rooms available for the selected dates", category.Name), nil)
			}

			total, _, err := CalculatePrice(line.CheckIn, line.CheckOut, category.BasePrice, category.Name, holidays, rules)
			if err != nil {
				return err
			}

			for i := 0; i < line.Quantity; i++ {
				booking := builders.NewBookingBuilder().
					WithGroup(groupID).
					WithRoom(freeRooms[i].ID, category.ID).
					WithCustomer(customer.Name, customer.Email, customer.Phone, customer.Guests).
					WithAgent(customer.AgentID).
					WithStay(line.CheckIn, line.CheckOut).
					WithTotalPrice(total).
					Build()
				if err := tx.Create(booking).Error; err != nil {
					return errors.NewAppError(errors.ErrCodeDBError, "Failed to create booking", err)
				}
				created = append(created, *booking)
			}
		}
		return nil
	}, serializableTx)

	if err != nil {
		return nil, "", err
	}

	s.logger.Info("Đã tạo nhóm booking %s với %d phòng", groupID, len(created))
	return created, groupID, nil
}

// CreateSingleBooking đặt một phòng: theo room_id chỉ định hoặc tự gán
// phòng trống đầu tiên của hạng phòng (room_number nhỏ nhất).
func (s *BookingService) CreateSingleBooking(roomID uint, categoryName string, checkIn, checkOut time.Time, customer CustomerInfo) (*models.Booking, error) {
	if !checkOut.After(checkIn) {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Check-out date must be after check-in date", nil)
	}

	var booking *models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		holidays, rules, err := loadPricingTables(tx)
		if err != nil {
			return err
		}

		var room models.Room
		if roomID != 0 {
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error; err != nil {
				if stderrors.Is(err, gorm.ErrRecordNotFound) {
					return errors.NewAppError(errors.ErrCodeNotFound, "Room not found", nil)
				}
				return errors.NewAppError(errors.ErrCodeDBError, "Failed to load room", err)
			}
			var category models.RoomCategory
			if err := tx.First(&category, room.CategoryID).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Failed to load room category", err)
			}

			records, bookings, err := LoadRoomConflicts(tx, []uint{room.ID}, checkIn, checkOut)
			if err != nil {
				return err
			}
			if len(EligibleRooms([]models.Room{room}, records, checkIn, checkOut)) == 0 {
				return errors.NewAppError(errors.ErrCodeValidation, "Room has scheduled maintenance during selected dates", nil)
			}
			if RoomHasConflict(room.ID, bookings, checkIn, checkOut, 0) {
				return errors.NewAppError(errors.ErrCodeAvailabilityConflict, "Room not available for selected dates", nil)
			}

			booking, err = s.createBookingRow(tx, room, category, checkIn, checkOut, customer, holidays, rules)
			return err
		}

		category, rooms, bookings, records, err := s.loadCategoryInventory(tx, categoryName, checkIn, checkOut)
		if err != nil {
			return err
		}
		eligible := EligibleRooms(rooms, records, checkIn, checkOut)
		freeRooms := RoomsFreeForRange(eligible, bookings, checkIn, checkOut)
		if len(freeRooms) == 0 {
			return errors.NewAppError(errors.ErrCodeAvailabilityConflict, "No rooms of this type available for selected dates", nil)
		}

		booking, err = s.createBookingRow(tx, freeRooms[0], category, checkIn, checkOut, customer, holidays, rules)
		return err
	}, serializableTx)

	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) createBookingRow(tx *gorm.DB, room models.Room, category models.RoomCategory, checkIn, checkOut time.Time, customer CustomerInfo, holidays []models.Holiday, rules []models.RateRule) (*models.Booking, error) {
	if customer.Guests > category.Capacity {
		return nil, errors.NewAppError(errors.ErrCodeValidation,
			fmt.Sprintf("Guest count exceeds %s capacity of %d", category.Name, category.Capacity), nil)
	}
	total, _, err := CalculatePrice(checkIn, checkOut, category.BasePrice, category.Name, holidays, rules)
	if err != nil {
		return nil, err
	}

	booking := builders.NewBookingBuilder().
		WithGroup(uuid.NewString()).
		WithRoom(room.ID, category.ID).
		WithCustomer(customer.Name, customer.Email, customer.Phone, customer.Guests).
		WithAgent(customer.AgentID).
		WithStay(checkIn, checkOut).
		WithTotalPrice(total).
		Build()
	if err := tx.Create(booking).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to create booking", err)
	}
	return booking, nil
}

// Approve duyệt booking: kiểm tra lại phòng đích ngay trong transaction
// trước khi chốt. roomID = 0 nghĩa là giữ phòng đã gán tạm lúc tạo.
// Trả về CONCURRENCY_CONFLICT và giữ nguyên trạng thái pending nếu phòng
// đã bị đơn khác chiếm; caller tải lại danh sách phòng trống rồi thử lại.
func (s *BookingService) Approve(bookingID uint, roomID uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, bookingID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeNotFound, "Booking not found", nil)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Failed to load booking", err)
		}
		if booking.Status == models.BookingStatusCancelled {
			return errors.NewAppError(errors.ErrCodeInvalidOperation, "Cannot approve a cancelled booking", nil)
		}

		targetID := booking.RoomID
		if roomID != 0 {
			targetID = roomID
		}

		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, targetID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeNotFound, "Room not found", nil)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Failed to load room", err)
		}
		if room.CategoryID != booking.CategoryID {
			return errors.NewAppError(errors.ErrCodeValidation, "Can only assign room of same type", nil)
		}

		records, bookings, err := LoadRoomConflicts(tx, []uint{room.ID}, booking.CheckIn, booking.CheckOut)
		if err != nil {
			return err
		}
		if len(EligibleRooms([]models.Room{room}, records, booking.CheckIn, booking.CheckOut)) == 0 {
			return errors.NewAppError(errors.ErrCodeValidation, "Selected room is under maintenance", nil)
		}
		if RoomHasConflict(room.ID, bookings, booking.CheckIn, booking.CheckOut, booking.ID) {
			return errors.NewAppError(errors.ErrCodeConcurrencyConflict, "Selected room is not available for these dates", nil)
		}

		booking.RoomID = room.ID
		booking.Status = models.BookingStatusConfirmed
		if err := tx.Save(&booking).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Failed to update booking", err)
		}
		return nil
	}, serializableTx)

	if err != nil {
		return nil, err
	}

	s.logger.Info("Booking %d đã được duyệt, phòng %d", booking.ID, booking.RoomID)
	return &booking, nil
}

// Reject từ chối booking: chuyển sang cancelled vô điều kiện,
// phòng được giải phóng cho các yêu cầu khác ngay lập tức.
func (s *BookingService) Reject(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, bookingID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeNotFound, "Booking not found", nil)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Failed to load booking", err)
		}
		booking.Status = models.BookingStatusCancelled
		if err := tx.Save(&booking).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Failed to update booking", err)
		}
		return nil
	}, serializableTx)

	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// AvailableRoomsFor liệt kê phòng cùng hạng còn trống cho khoảng nghỉ của booking.
// Phòng đang gán cho booking luôn có mặt trong kết quả với is_current = true.
func (s *BookingService) AvailableRoomsFor(bookingID uint) ([]dto.RoomWithCurrent, error) {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Booking not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load booking", err)
	}

	var category models.RoomCategory
	if err := s.db.First(&category, booking.CategoryID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load room category", err)
	}

	var rooms []models.Room
	if err := s.db.Where("category_id = ?", category.ID).Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load rooms", err)
	}
	roomIDs := make([]uint, 0, len(rooms))
	for _, r := range rooms {
		roomIDs = append(roomIDs, r.ID)
	}
	records, bookings, err := LoadRoomConflicts(s.db, roomIDs, booking.CheckIn, booking.CheckOut)
	if err != nil {
		return nil, err
	}

	eligible := EligibleRooms(rooms, records, booking.CheckIn, booking.CheckOut)
	free := roomsFreeExcluding(eligible, bookings, booking.CheckIn, booking.CheckOut, booking.ID)

	result := make([]dto.RoomWithCurrent, 0, len(free))
	currentIncluded := false
	for _, room := range free {
		isCurrent := room.ID == booking.RoomID
		currentIncluded = currentIncluded || isCurrent
		result = append(result, dto.RoomWithCurrent{
			RoomResponse: roomToResponse(room, category),
			IsCurrent:    isCurrent,
		})
	}

	// Phòng đang gán luôn phải có mặt để nhân viên thấy lựa chọn hiện tại
	if !currentIncluded {
		for _, room := range rooms {
			if room.ID == booking.RoomID {
				result = append(result, dto.RoomWithCurrent{
					RoomResponse: roomToResponse(room, category),
					IsCurrent:    true,
				})
				break
			}
		}
	}
	return result, nil
}

// CategoryAvailability tính số phòng trống và các ngày kín phòng theo từng
// hạng phòng cho khoảng [checkIn, checkOut), đọc tươi từ DB cho mỗi yêu cầu.
func (s *BookingService) CategoryAvailability(checkIn, checkOut time.Time) ([]dto.CategoryAvailabilityResponse, error) {
	if !checkOut.After(checkIn) {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Check-out date must be after check-in date", nil)
	}

	var categories []models.RoomCategory
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load categories", err)
	}

	result := make([]dto.CategoryAvailabilityResponse, 0, len(categories))
	for _, category := range categories {
		var rooms []models.Room
		if err := s.db.Where("category_id = ?", category.ID).Order("room_number ASC").Find(&rooms).Error; err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load rooms", err)
		}
		roomIDs := make([]uint, 0, len(rooms))
		for _, r := range rooms {
			roomIDs = append(roomIDs, r.ID)
		}
		records, bookings, err := LoadRoomConflicts(s.db, roomIDs, checkIn, checkOut)
		if err != nil {
			return nil, err
		}

		eligible := EligibleRooms(rooms, records, checkIn, checkOut)
		available, fullyBooked := RangeAvailability(eligible, bookings, checkIn, checkOut)
		result = append(result, dto.CategoryAvailabilityResponse{
			Category:         category.Name,
			BasePrice:        category.BasePrice,
			Capacity:         category.Capacity,
			AvailableRooms:   available,
			FullyBookedDates: fullyBooked,
		})
	}
	return result, nil
}

// loadCategoryInventory nạp hạng phòng theo tên cùng phòng (khóa FOR UPDATE),
// booking trùng khoảng và bản ghi bảo trì của các phòng đó.
func (s *BookingService) loadCategoryInventory(tx *gorm.DB, categoryName string, checkIn, checkOut time.Time) (models.RoomCategory, []models.Room, []models.Booking, []models.RoomMaintenance, error) {
	var category models.RoomCategory
	if err := tx.Where("name = ?", categoryName).First(&category).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return category, nil, nil, nil, errors.NewAppError(errors.ErrCodeNotFound, "Room type not found", nil)
		}
		return category, nil, nil, nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load category", err)
	}

	var rooms []models.Room
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("category_id = ?", category.ID).
		Order("room_number ASC").
		Find(&rooms).Error; err != nil {
		return category, nil, nil, nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load rooms", err)
	}

	roomIDs := make([]uint, 0, len(rooms))
	for _, r := range rooms {
		roomIDs = append(roomIDs, r.ID)
	}
	records, bookings, err := LoadRoomConflicts(tx, roomIDs, checkIn, checkOut)
	if err != nil {
		return category, nil, nil, nil, err
	}
	return category, rooms, bookings, records, nil
}

// LoadRoomConflicts nạp bản ghi bảo trì ongoing và booking pending/confirmed
// giao với [checkIn, checkOut) của các phòng roomIDs
func LoadRoomConflicts(tx *gorm.DB, roomIDs []uint, checkIn, checkOut time.Time) ([]models.RoomMaintenance, []models.Booking, error) {
	if len(roomIDs) == 0 {
		return nil, nil, nil
	}

	var records []models.RoomMaintenance
	if err := tx.Where("room_id IN ? AND status = ?", roomIDs, models.MaintenanceRecordOngoing).
		Find(&records).Error; err != nil {
		return nil, nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load maintenance records", err)
	}

	var bookings []models.Booking
	if err := tx.Where("room_id IN ? AND status IN ? AND check_in < ? AND check_out > ?",
		roomIDs, []string{models.BookingStatusPending, models.BookingStatusConfirmed}, checkOut, checkIn).
		Find(&bookings).Error; err != nil {
		return nil, nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load bookings", err)
	}
	return records, bookings, nil
}

func loadPricingTables(tx *gorm.DB) ([]models.Holiday, []models.RateRule, error) {
	var holidays []models.Holiday
	if err := tx.Find(&holidays).Error; err != nil {
		return nil, nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load holidays", err)
	}
	var rules []models.RateRule
	if err := tx.Where("is_active = ?", true).Find(&rules).Error; err != nil {
		return nil, nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load rate rules", err)
	}
	return holidays, rules, nil
}

func roomToResponse(room models.Room, category models.RoomCategory) dto.RoomResponse {
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
