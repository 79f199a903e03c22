package builders

import (
	"testing"
	"time"

	"hotel/models"

	"github.com/stretchr/testify/assert"
)

func TestBookingBuilderDefaults(t *testing.T) {
	booking := NewBookingBuilder().Build()

	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Nil(t, booking.AgentID)
}

func TestBookingBuilderChain(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	agentID := uint(7)

	booking := NewBookingBuilder().
		WithGroup("grp-123").
		WithRoom(4, 2).
		WithCustomer("Tan Ah Kow", "tan@example.com", "+60123456789", 2).
		WithAgent(&agentID).
		WithStay(checkIn, checkOut).
		WithTotalPrice(450).
		Build()

	assert.Equal(t, "grp-123", booking.GroupID)
	assert.Equal(t, uint(4), booking.RoomID)
	assert.Equal(t, uint(2), booking.CategoryID)
	assert.Equal(t, "Tan Ah Kow", booking.CustomerName)
	assert.Equal(t, 2, booking.Guests)
	assert.Equal(t, &agentID, booking.AgentID)
	assert.Equal(t, checkIn, booking.CheckIn)
	assert.Equal(t, checkOut, booking.CheckOut)
	assert.Equal(t, 450.0, booking.TotalPrice)
	assert.Equal(t, models.BookingStatusPending, booking.Status)

	cancelled := NewBookingBuilder().WithStatus(models.BookingStatusCancelled).Build()
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
}
