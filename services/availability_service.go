package services

import (
	"sort"
	"time"

	"hotel/constants"
	"hotel/models"
)

// Phần lõi tính phòng trống là các hàm thuần trên dữ liệu đã nạp:
// controller/allocator chịu trách nhiệm đọc tươi từ DB trước khi gọi
// (kết quả cache không bao giờ được dùng cho quyết định giữ phòng).

// EligibleRooms lọc các phòng operational không vướng bản ghi bảo trì ongoing
// trong khoảng [checkIn, checkOut), trả về theo thứ tự room_number tăng dần.
func EligibleRooms(rooms []models.Room, records []models.RoomMaintenance, checkIn, checkOut time.Time) []models.Room {
	recordsByRoom := make(map[uint][]models.RoomMaintenance)
	for _, m := range records {
		recordsByRoom[m.RoomID] = append(recordsByRoom[m.RoomID], m)
	}

	eligible := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if !room.IsBookable() {
			continue
		}
		blocked := false
		for _, m := range recordsByRoom[room.ID] {
			if m.Blocks(checkIn, checkOut) {
				blocked = true
				break
			}
		}
		if !blocked {
			eligible = append(eligible, room)
		}
	}

	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].RoomNumber < eligible[j].RoomNumber
	})
	return eligible
}

// FreeCount đếm số phòng trong rooms không có booking pending/confirmed chứa ngày d
func FreeCount(rooms []models.Room, bookings []models.Booking, d time.Time) int {
	free := 0
	for _, room := range rooms {
		occupied := false
		for _, b := range bookings {
			if b.RoomID == room.ID && b.OccupiesInventory() && b.Contains(d) {
				occupied = true
				break
			}
		}
		if !occupied {
			free++
		}
	}
	return free
}

// RangeAvailability tính available_rooms (min free count trên từng ngày)
// và danh sách các ngày kín phòng trong khoảng [checkIn, checkOut).
func RangeAvailability(rooms []models.Room, bookings []models.Booking, checkIn, checkOut time.Time) (int, []string) {
	fullyBooked := make([]string, 0)
	if len(rooms) == 0 {
		for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
			fullyBooked = append(fullyBooked, d.Format(constants.DateLayout))
		}
		return 0, fullyBooked
	}

	minFree := len(rooms)
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		free := FreeCount(rooms, bookings, d)
		if free < minFree {
			minFree = free
		}
		if free == 0 {
			fullyBooked = append(fullyBooked, d.Format(constants.DateLayout))
		}
	}
	return minFree, fullyBooked
}

// RoomsFreeForRange trả về các phòng không có booking pending/confirmed nào
// giao với [checkIn, checkOut), giữ nguyên thứ tự room_number của đầu vào.
// Đây là tập phòng gán được cho trọn kỳ nghỉ mà không phải đổi phòng giữa chừng.
func RoomsFreeForRange(rooms []models.Room, bookings []models.Booking, checkIn, checkOut time.Time) []models.Room {
	return roomsFreeExcluding(rooms, bookings, checkIn, checkOut, 0)
}

// roomsFreeExcluding như RoomsFreeForRange nhưng bỏ qua booking excludeID
// (dùng khi kiểm tra lại lúc duyệt đơn: đơn đang duyệt không tự chặn chính nó).
func roomsFreeExcluding(rooms []models.Room, bookings []models.Booking, checkIn, checkOut time.Time, excludeID uint) []models.Room {
	free := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if RoomHasConflict(room.ID, bookings, checkIn, checkOut, excludeID) {
			continue
		}
		free = append(free, room)
	}
	return free
}

// RoomHasConflict kiểm tra phòng roomID có booking pending/confirmed nào
// (khác excludeID) giao với [checkIn, checkOut) không.
func RoomHasConflict(roomID uint, bookings []models.Booking, checkIn, checkOut time.Time, excludeID uint) bool {
	for _, b := range bookings {
		if b.ID == excludeID || b.RoomID != roomID {
			continue
		}
		if b.OccupiesInventory() && b.Overlaps(checkIn, checkOut) {
			return true
		}
	}
	return false
}
