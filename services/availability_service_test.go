package services

import (
	"testing"
	"time"

	"hotel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func testRooms() []models.Room {
	return []models.Room{
		{ID: 1, RoomNumber: "101", CategoryID: 1, MaintenanceStatus: models.MaintenanceStatusOperational},
		{ID: 2, RoomNumber: "102", CategoryID: 1, MaintenanceStatus: models.MaintenanceStatusOperational},
		{ID: 3, RoomNumber: "103", CategoryID: 1, MaintenanceStatus: models.MaintenanceStatusOperational},
	}
}

func TestEligibleRoomsFiltersStatus(t *testing.T) {
	rooms := testRooms()
	rooms[1].MaintenanceStatus = models.MaintenanceStatusMaintenance
	rooms[2].MaintenanceStatus = models.MaintenanceStatusClosed

	eligible := EligibleRooms(rooms, nil, date(2026, 3, 10), date(2026, 3, 12))

	require.Len(t, eligible, 1)
	assert.Equal(t, "101", eligible[0].RoomNumber)
}

func TestEligibleRoomsMaintenanceWindow(t *testing.T) {
	rooms := testRooms()
	records := []models.RoomMaintenance{
		{
			ID: 1, RoomID: 2,
			StartDate: date(2026, 3, 11),
			EndDate:   timePtr(date(2026, 3, 15)),
			Status:    models.MaintenanceRecordOngoing,
		},
	}

	// Khoảng nghỉ giao với cửa sổ bảo trì
	eligible := EligibleRooms(rooms, records, date(2026, 3, 10), date(2026, 3, 12))
	require.Len(t, eligible, 2)
	assert.Equal(t, "101", eligible[0].RoomNumber)
	assert.Equal(t, "103", eligible[1].RoomNumber)

	// Khoảng nghỉ kết thúc đúng lúc bảo trì bắt đầu thì không bị chặn
	eligible = EligibleRooms(rooms, records, date(2026, 3, 9), date(2026, 3, 11))
	assert.Len(t, eligible, 3)

	// Bản ghi completed không còn chặn
	records[0].Status = models.MaintenanceRecordCompleted
	eligible = EligibleRooms(rooms, records, date(2026, 3, 10), date(2026, 3, 12))
	assert.Len(t, eligible, 3)
}

func TestEligibleRoomsOpenEndedMaintenance(t *testing.T) {
	rooms := testRooms()
	records := []models.RoomMaintenance{
		{ID: 1, RoomID: 1, StartDate: date(2026, 3, 1), EndDate: nil, Status: models.MaintenanceRecordOngoing},
	}

	// Chưa có end_date: chặn mọi khoảng từ start_date trở đi
	eligible := EligibleRooms(rooms, records, date(2026, 6, 1), date(2026, 6, 5))
	require.Len(t, eligible, 2)
	assert.Equal(t, "102", eligible[0].RoomNumber)
}

func TestEligibleRoomsSortedByRoomNumber(t *testing.T) {
	rooms := []models.Room{
		{ID: 9, RoomNumber: "303", MaintenanceStatus: models.MaintenanceStatusOperational},
		{ID: 4, RoomNumber: "101", MaintenanceStatus: models.MaintenanceStatusOperational},
		{ID: 7, RoomNumber: "202", MaintenanceStatus: models.MaintenanceStatusOperational},
	}

	eligible := EligibleRooms(rooms, nil, date(2026, 3, 10), date(2026, 3, 12))

	require.Len(t, eligible, 3)
	assert.Equal(t, "101", eligible[0].RoomNumber)
	assert.Equal(t, "202", eligible[1].RoomNumber)
	assert.Equal(t, "303", eligible[2].RoomNumber)
}

func TestRangeAvailabilityPartialOverlaps(t *testing.T) {
	rooms := testRooms()[:2]
	bookings := []models.Booking{
		{ID: 1, RoomID: 1, Status: models.BookingStatusConfirmed, CheckIn: date(2026, 3, 10), CheckOut: date(2026, 3, 11)},
		{ID: 2, RoomID: 2, Status: models.BookingStatusPending, CheckIn: date(2026, 3, 11), CheckOut: date(2026, 3, 12)},
	}

	// Mỗi đêm một phòng bận nhưng không đêm nào kín cả hai
	available, fullyBooked := RangeAvailability(rooms, bookings, date(2026, 3, 10), date(2026, 3, 12))
	assert.Equal(t, 1, available)
	assert.Empty(t, fullyBooked)

	// Không phòng nào trống trọn khoảng: phải đổi phòng giữa chừng
	free := RoomsFreeForRange(rooms, bookings, date(2026, 3, 10), date(2026, 3, 12))
	assert.Empty(t, free)
}

func TestRangeAvailabilityFullyBookedDates(t *testing.T) {
	rooms := testRooms()[:2]
	bookings := []models.Booking{
		{ID: 1, RoomID: 1, Status: models.BookingStatusConfirmed, CheckIn: date(2026, 3, 10), CheckOut: date(2026, 3, 12)},
		{ID: 2, RoomID: 2, Status: models.BookingStatusConfirmed, CheckIn: date(2026, 3, 11), CheckOut: date(2026, 3, 12)},
	}

	available, fullyBooked := RangeAvailability(rooms, bookings, date(2026, 3, 10), date(2026, 3, 13))
	assert.Equal(t, 0, available)
	assert.Equal(t, []string{"2026-03-11"}, fullyBooked)
}

func TestRangeAvailabilityNoRooms(t *testing.T) {
	available, fullyBooked := RangeAvailability(nil, nil, date(2026, 3, 10), date(2026, 3, 12))
	assert.Equal(t, 0, available)
	assert.Equal(t, []string{"2026-03-10", "2026-03-11"}, fullyBooked)
}

func TestCancelledBookingDoesNotOccupy(t *testing.T) {
	rooms := testRooms()[:1]
	bookings := []models.Booking{
		{ID: 1, RoomID: 1, Status: models.BookingStatusCancelled, CheckIn: date(2026, 3, 10), CheckOut: date(2026, 3, 12)},
	}

	available, fullyBooked := RangeAvailability(rooms, bookings, date(2026, 3, 10), date(2026, 3, 12))
	assert.Equal(t, 1, available)
	assert.Empty(t, fullyBooked)

	free := RoomsFreeForRange(rooms, bookings, date(2026, 3, 10), date(2026, 3, 12))
	assert.Len(t, free, 1)
}

func TestBackToBackStaysDoNotConflict(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, RoomID: 1, Status: models.BookingStatusConfirmed, CheckIn: date(2026, 3, 10), CheckOut: date(2026, 3, 12)},
	}

	// Ngày check-out của khách trước là ngày check-in của khách sau
	assert.False(t, RoomHasConflict(1, bookings, date(2026, 3, 12), date(2026, 3, 14), 0))
	assert.False(t, RoomHasConflict(1, bookings, date(2026, 3, 8), date(2026, 3, 10), 0))
	assert.True(t, RoomHasConflict(1, bookings, date(2026, 3, 11), date(2026, 3, 13), 0))
}

func TestRoomHasConflictExcludesOwnBooking(t *testing.T) {
	bookings := []models.Booking{
		{ID: 5, RoomID: 1, Status: models.BookingStatusPending, CheckIn: date(2026, 3, 10), CheckOut: date(2026, 3, 12)},
	}

	// Đơn đang duyệt không tự chặn chính nó
	assert.False(t, RoomHasConflict(1, bookings, date(2026, 3, 10), date(2026, 3, 12), 5))
	assert.True(t, RoomHasConflict(1, bookings, date(2026, 3, 10), date(2026, 3, 12), 0))
}

func TestFreeCountPerDate(t *testing.T) {
	rooms := testRooms()
	bookings := []models.Booking{
		{ID: 1, RoomID: 1, Status: models.BookingStatusConfirmed, CheckIn: date(2026, 3, 10), CheckOut: date(2026, 3, 12)},
		{ID: 2, RoomID: 2, Status: models.BookingStatusPending, CheckIn: date(2026, 3, 11), CheckOut: date(2026, 3, 13)},
	}

	assert.Equal(t, 2, FreeCount(rooms, bookings, date(2026, 3, 10)))
	assert.Equal(t, 1, FreeCount(rooms, bookings, date(2026, 3, 11)))
	assert.Equal(t, 2, FreeCount(rooms, bookings, date(2026, 3, 12)))
	assert.Equal(t, 3, FreeCount(rooms, bookings, date(2026, 3, 13)))
}

func TestRoomsFreeForRangeKeepsRoomNumberOrder(t *testing.T) {
	rooms := testRooms()
	bookings := []models.Booking{
		{ID: 1, RoomID: 2, Status: models.BookingStatusConfirmed, CheckIn: date(2026, 3, 10), CheckOut: date(2026, 3, 12)},
	}

	free := RoomsFreeForRange(rooms, bookings, date(2026, 3, 10), date(2026, 3, 12))

	require.Len(t, free, 2)
	assert.Equal(t, "101", free[0].RoomNumber)
	assert.Equal(t, "103", free[1].RoomNumber)
}
