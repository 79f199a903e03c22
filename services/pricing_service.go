package services

import (
	"fmt"
	"math"
	"time"

	"hotel/constants"
	"hotel/dto"
	"hotel/errors"
	"hotel/models"
)

// Các hệ số giá gộp bằng max, không nhân dồn, để chặn phụ thu chồng phụ thu.
// Hệ số không bao giờ nhỏ hơn 1.0: holiday/rate rule chỉ tăng giá, không giảm.

// CalculatePrice tính tổng giá và bảng giá theo đêm cho khoảng [checkIn, checkOut).
// Trả về BLACKOUT_DATE nếu khoảng nghỉ chứa ngày blackout, không trả kết quả dở dang.
func CalculatePrice(checkIn, checkOut time.Time, basePrice float64, category string, holidays []models.Holiday, rules []models.RateRule) (float64, []dto.PriceNight, error) {
	if !checkOut.After(checkIn) {
		return 0, nil, errors.NewAppError(errors.ErrCodeValidation, "Check-out date must be after check-in date", nil)
	}
	if basePrice <= 0 {
		return 0, nil, errors.NewAppError(errors.ErrCodeValidation, "Room price must be positive", nil)
	}

	holidayByDate := make(map[string]models.Holiday, len(holidays))
	for _, h := range holidays {
		holidayByDate[h.Date.Format(constants.DateLayout)] = h
	}

	// Kiểm tra blackout trước khi tính bất kỳ đêm nào
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		if h, ok := holidayByDate[d.Format(constants.DateLayout)]; ok && h.IsBlackout {
			return 0, nil, errors.NewAppError(errors.ErrCodeBlackoutDate,
				fmt.Sprintf("Bookings are not accepted on %s (%s)", d.Format(constants.DateLayout), h.Name), nil)
		}
	}

	total := 0.0
	breakdown := make([]dto.PriceNight, 0)
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		multiplier := 1.0
		notes := "Standard rate"

		if h, ok := holidayByDate[d.Format(constants.DateLayout)]; ok && h.RateMultiplier > multiplier {
			multiplier = h.RateMultiplier
			notes = "Holiday: " + h.Name
		}
		if rule, ok := bestRateRule(rules, category, d); ok && rule.RateMultiplier > multiplier {
			multiplier = rule.RateMultiplier
			notes = "Rate rule: " + rule.Name
		}

		nightly := roundMoney(basePrice * multiplier)
		total += nightly
		breakdown = append(breakdown, dto.PriceNight{
			Date:  d.Format(constants.DateLayout),
			Total: nightly,
			Notes: notes,
		})
	}

	return roundMoney(total), breakdown, nil
}

// bestRateRule chọn rule đang hiệu lực có hệ số cao nhất cho hạng phòng và ngày d
func bestRateRule(rules []models.RateRule, category string, d time.Time) (models.RateRule, bool) {
	var best models.RateRule
	found := false
	for _, rule := range rules {
		if !rule.AppliesTo(category, d) {
			continue
		}
		if !found || rule.RateMultiplier > best.RateMultiplier {
			best = rule
			found = true
		}
	}
	return best, found
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
