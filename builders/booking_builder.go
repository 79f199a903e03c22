package builders

import (
	"time"

	"hotel/models"
)

// BookingBuilder giúp lắp booking theo từng bước khi allocator
// tạo các booking anh em trong cùng một nhóm
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{Status: models.BookingStatusPending},
	}
}

// WithGroup gán nhóm booking
func (b *BookingBuilder) WithGroup(groupID string) *BookingBuilder {
	b.booking.GroupID = groupID
	return b
}

// WithRoom gán phòng và hạng phòng
func (b *BookingBuilder) WithRoom(roomID, categoryID uint) *BookingBuilder {
	b.booking.RoomID = roomID
	b.booking.CategoryID = categoryID
	return b
}

// WithCustomer gán thông tin khách
func (b *BookingBuilder) WithCustomer(name, email, phone string, guests int) *BookingBuilder {
	b.booking.CustomerName = name
	b.booking.CustomerEmail = email
	b.booking.CustomerPhone = phone
	b.booking.Guests = guests
	return b
}

// WithAgent gán đại lý (nil nếu khách đặt trực tiếp)
func (b *BookingBuilder) WithAgent(agentID *uint) *BookingBuilder {
	b.booking.AgentID = agentID
	return b
}

// WithStay gán khoảng nghỉ [checkIn, checkOut)
func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.booking.CheckIn = checkIn
	b.booking.CheckOut = checkOut
	return b
}

// WithTotalPrice gán tổng giá đã tính tại thời điểm tạo
func (b *BookingBuilder) WithTotalPrice(totalPrice float64) *BookingBuilder {
	b.booking.TotalPrice = totalPrice
	return b
}

// WithStatus gán trạng thái
func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.booking.Status = status
	return b
}

// Build trả về booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
