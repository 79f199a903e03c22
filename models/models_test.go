package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingOverlapsHalfOpen(t *testing.T) {
	b := Booking{CheckIn: date(2026, 3, 10), CheckOut: date(2026, 3, 12)}

	assert.True(t, b.Overlaps(date(2026, 3, 11), date(2026, 3, 13)))
	assert.True(t, b.Overlaps(date(2026, 3, 9), date(2026, 3, 11)))
	// Khoảng chạm đầu mút không tính là giao
	assert.False(t, b.Overlaps(date(2026, 3, 12), date(2026, 3, 14)))
	assert.False(t, b.Overlaps(date(2026, 3, 8), date(2026, 3, 10)))
}

func TestBookingContains(t *testing.T) {
	b := Booking{CheckIn: date(2026, 3, 10), CheckOut: date(2026, 3, 12)}

	assert.True(t, b.Contains(date(2026, 3, 10)))
	assert.True(t, b.Contains(date(2026, 3, 11)))
	assert.False(t, b.Contains(date(2026, 3, 12)))
	assert.False(t, b.Contains(date(2026, 3, 9)))
}

func TestBookingOccupiesInventory(t *testing.T) {
	assert.True(t, (&Booking{Status: BookingStatusPending}).OccupiesInventory())
	assert.True(t, (&Booking{Status: BookingStatusConfirmed}).OccupiesInventory())
	assert.False(t, (&Booking{Status: BookingStatusCancelled}).OccupiesInventory())
}

func TestMaintenanceBlocks(t *testing.T) {
	end := date(2026, 3, 15)
	m := RoomMaintenance{StartDate: date(2026, 3, 11), EndDate: &end, Status: MaintenanceRecordOngoing}

	assert.True(t, m.Blocks(date(2026, 3, 10), date(2026, 3, 12)))
	assert.True(t, m.Blocks(date(2026, 3, 14), date(2026, 3, 16)))
	assert.False(t, m.Blocks(date(2026, 3, 9), date(2026, 3, 11)))
	assert.False(t, m.Blocks(date(2026, 3, 15), date(2026, 3, 17)))

	m.Status = MaintenanceRecordCompleted
	assert.False(t, m.Blocks(date(2026, 3, 10), date(2026, 3, 12)))
}

func TestMaintenanceBlocksOpenEnded(t *testing.T) {
	m := RoomMaintenance{StartDate: date(2026, 3, 11), Status: MaintenanceRecordOngoing}

	assert.True(t, m.Blocks(date(2026, 6, 1), date(2026, 6, 3)))
	assert.False(t, m.Blocks(date(2026, 3, 1), date(2026, 3, 11)))
}

func TestRateRuleAppliesTo(t *testing.T) {
	suite := "Suite"
	r := RateRule{
		RoomCategory: &suite,
		StartDate:    date(2026, 5, 1),
		EndDate:      date(2026, 5, 31),
		IsActive:     true,
	}

	assert.True(t, r.AppliesTo("Suite", date(2026, 5, 1)))
	// end_date tính cả hai đầu
	assert.True(t, r.AppliesTo("Suite", date(2026, 5, 31)))
	assert.False(t, r.AppliesTo("Suite", date(2026, 6, 1)))
	assert.False(t, r.AppliesTo("Deluxe", date(2026, 5, 10)))

	r.RoomCategory = nil
	assert.True(t, r.AppliesTo("Deluxe", date(2026, 5, 10)))

	r.IsActive = false
	assert.False(t, r.AppliesTo("Deluxe", date(2026, 5, 10)))
}

func TestRoomValidateStatus(t *testing.T) {
	room := Room{MaintenanceStatus: MaintenanceStatusOperational}
	assert.NoError(t, room.ValidateStatus())
	assert.True(t, room.IsBookable())

	room.MaintenanceStatus = MaintenanceStatusClosed
	assert.NoError(t, room.ValidateStatus())
	assert.False(t, room.IsBookable())

	room.MaintenanceStatus = "renovating"
	assert.Error(t, room.ValidateStatus())
}

func TestCategoryValidate(t *testing.T) {
	category := RoomCategory{Name: "Deluxe", BasePrice: 150, Capacity: 2}
	assert.NoError(t, category.Validate())

	assert.Error(t, (&RoomCategory{Name: "", BasePrice: 150, Capacity: 2}).Validate())
	assert.Error(t, (&RoomCategory{Name: "Deluxe", BasePrice: 0, Capacity: 2}).Validate())
	assert.Error(t, (&RoomCategory{Name: "Deluxe", BasePrice: 150, Capacity: 0}).Validate())
}
