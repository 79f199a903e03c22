package jobs

import (
	"fmt"
	"log"
	"time"

	"hotel/constants"
	"hotel/models"
	"hotel/utils"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitCronJobs khởi tạo các cron jobs chạy lúc 0h mỗi ngày:
// đóng các bản ghi bảo trì đã hết hạn và hủy đơn pending quá hạn chờ biên lai
func InitCronJobs(c *cron.Cron, m *melody.Melody, db *gorm.DB) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		utils.LogInfo("Chạy dọn dẹp hàng ngày lúc: %v", now)

		if err := completeExpiredMaintenance(db, now); err != nil {
			utils.LogError("Lỗi khi đóng bản ghi bảo trì hết hạn: %v", err)
		}
		if err := cancelStalePendingBookings(db, m, now); err != nil {
			utils.LogError("Lỗi khi hủy đơn pending quá hạn: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

// completeExpiredMaintenance đóng bản ghi ongoing có end_date đã qua
// và trả phòng về operational nếu không còn bản ghi ongoing nào khác
func completeExpiredMaintenance(db *gorm.DB, now time.Time) error {
	var records []models.RoomMaintenance
	if err := db.Where("status = ? AND end_date IS NOT NULL AND end_date <= ?",
		models.MaintenanceRecordOngoing, now).
		Find(&records).Error; err != nil {
		return err
	}

	for _, record := range records {
		err := db.Transaction(func(tx *gorm.DB) error {
			record.Status = models.MaintenanceRecordCompleted
			if err := tx.Save(&record).Error; err != nil {
				return err
			}

			var remaining int64
			if err := tx.Model(&models.RoomMaintenance{}).
				Where("room_id = ? AND status = ?", record.RoomID, models.MaintenanceRecordOngoing).
				Count(&remaining).Error; err != nil {
				return err
			}
			if remaining > 0 {
				return nil
			}
			return tx.Model(&models.Room{}).
				Where("id = ? AND maintenance_status = ?", record.RoomID, models.MaintenanceStatusMaintenance).
				Update("maintenance_status", models.MaintenanceStatusOperational).Error
		})
		if err != nil {
			utils.LogError("Không đóng được bản ghi bảo trì %d: %v", record.ID, err)
			continue
		}
		utils.LogInfo("Đã đóng bản ghi bảo trì %d, phòng %d", record.ID, record.RoomID)
	}
	return nil
}

// cancelStalePendingBookings hủy đơn pending quá hạn chờ biên lai,
// giải phóng phòng cho khách khác
func cancelStalePendingBookings(db *gorm.DB, m *melody.Melody, now time.Time) error {
	cutoff := now.AddDate(0, 0, -constants.PendingReceiptDays)

	var stale []models.Booking
	if err := db.Where("status = ? AND receipt_url = ? AND created_at < ?",
		models.BookingStatusPending, "", cutoff).
		Find(&stale).Error; err != nil {
		return err
	}

	for _, booking := range stale {
		if err := db.Model(&booking).Update("status", models.BookingStatusCancelled).Error; err != nil {
			utils.LogError("Không hủy được booking %d: %v", booking.ID, err)
			continue
		}
		utils.LogInfo("Đã hủy booking %d quá %d ngày không có biên lai", booking.ID, constants.PendingReceiptDays)

		if m != nil {
			msg := fmt.Sprintf("🔔 Booking %d (%s): cancelled, no payment receipt after %d days",
				booking.ID, booking.CustomerName, constants.PendingReceiptDays)
			if err := m.Broadcast([]byte(msg)); err != nil {
				utils.LogError("Không broadcast được thông báo hủy: %v", err)
			}
		}
	}
	return nil
}
