package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Trạng thái phòng trên bảng room-status
const (
	RoomBoardAvailable   = "available"
	RoomBoardOccupied    = "occupied"
	RoomBoardMaintenance = "maintenance"
	RoomBoardClosed      = "closed"
)

// DateLayout định dạng ngày dùng trên toàn bộ API
const DateLayout = "2006-01-02"

// PendingReceiptDays số ngày chờ biên lai trước khi đơn pending bị hủy tự động
const PendingReceiptDays = 7
