package services

import (
	"testing"
	"time"

	"hotel/errors"
	"hotel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}

func TestCalculatePriceStandardNights(t *testing.T) {
	total, breakdown, err := CalculatePrice(
		date(2026, 3, 10), date(2026, 3, 13),
		100, "Deluxe", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 300.0, total)
	require.Len(t, breakdown, 3)
	for _, night := range breakdown {
		assert.Equal(t, 100.0, night.Total)
		assert.Equal(t, "Standard rate", night.Notes)
	}
	assert.Equal(t, "2026-03-10", breakdown[0].Date)
	assert.Equal(t, "2026-03-12", breakdown[2].Date)
}

func TestCalculatePriceHolidayNight(t *testing.T) {
	holidays := []models.Holiday{
		{Name: "Hari Merdeka", Date: date(2026, 8, 31), RateMultiplier: 2.0},
	}

	total, breakdown, err := CalculatePrice(
		date(2026, 8, 30), date(2026, 9, 1),
		100, "Deluxe", holidays, nil)

	require.NoError(t, err)
	assert.Equal(t, 300.0, total)
	assert.Equal(t, "Standard rate", breakdown[0].Notes)
	assert.Equal(t, "Holiday: Hari Merdeka", breakdown[1].Notes)
	assert.Equal(t, 200.0, breakdown[1].Total)
}

func TestCalculatePriceRateRuleInclusiveRange(t *testing.T) {
	rules := []models.RateRule{
		{
			Name:           "Peak season",
			StartDate:      date(2026, 12, 20),
			EndDate:        date(2026, 12, 22),
			RateMultiplier: 1.5,
			IsActive:       true,
		},
	}

	// Đêm 22 vẫn nằm trong rule vì end_date tính cả hai đầu
	total, breakdown, err := CalculatePrice(
		date(2026, 12, 22), date(2026, 12, 24),
		100, "Deluxe", nil, rules)

	require.NoError(t, err)
	assert.Equal(t, 250.0, total)
	assert.Equal(t, "Rate rule: Peak season", breakdown[0].Notes)
	assert.Equal(t, "Standard rate", breakdown[1].Notes)
}

func TestCalculatePriceRateRuleCategoryFilter(t *testing.T) {
	rules := []models.RateRule{
		{
			Name:           "Suite promo weekend",
			RoomCategory:   strPtr("Suite"),
			StartDate:      date(2026, 5, 1),
			EndDate:        date(2026, 5, 31),
			RateMultiplier: 1.8,
			IsActive:       true,
		},
	}

	total, _, err := CalculatePrice(
		date(2026, 5, 10), date(2026, 5, 11),
		100, "Deluxe", nil, rules)
	require.NoError(t, err)
	assert.Equal(t, 100.0, total)

	total, _, err = CalculatePrice(
		date(2026, 5, 10), date(2026, 5, 11),
		100, "Suite", nil, rules)
	require.NoError(t, err)
	assert.Equal(t, 180.0, total)
}

func TestCalculatePriceInactiveRuleIgnored(t *testing.T) {
	rules := []models.RateRule{
		{
			Name:           "Old promo",
			StartDate:      date(2026, 5, 1),
			EndDate:        date(2026, 5, 31),
			RateMultiplier: 3.0,
			IsActive:       false,
		},
	}

	total, _, err := CalculatePrice(
		date(2026, 5, 10), date(2026, 5, 11),
		100, "Deluxe", nil, rules)
	require.NoError(t, err)
	assert.Equal(t, 100.0, total)
}

func TestCalculatePriceMultipliersDoNotStack(t *testing.T) {
	holidays := []models.Holiday{
		{Name: "New Year", Date: date(2027, 1, 1), RateMultiplier: 2.0},
	}
	rules := []models.RateRule{
		{
			Name:           "Year end",
			StartDate:      date(2026, 12, 28),
			EndDate:        date(2027, 1, 3),
			RateMultiplier: 1.5,
			IsActive:       true,
		},
	}

	// Hệ số lấy max, không nhân dồn: 2.0, không phải 3.0
	total, breakdown, err := CalculatePrice(
		date(2027, 1, 1), date(2027, 1, 2),
		100, "Deluxe", holidays, rules)

	require.NoError(t, err)
	assert.Equal(t, 200.0, total)
	assert.Equal(t, "Holiday: New Year", breakdown[0].Notes)
}

func TestCalculatePriceHolidayWinsTies(t *testing.T) {
	holidays := []models.Holiday{
		{Name: "Deepavali", Date: date(2026, 11, 8), RateMultiplier: 1.5},
	}
	rules := []models.RateRule{
		{
			Name:           "November promo",
			StartDate:      date(2026, 11, 1),
			EndDate:        date(2026, 11, 30),
			RateMultiplier: 1.5,
			IsActive:       true,
		},
	}

	_, breakdown, err := CalculatePrice(
		date(2026, 11, 8), date(2026, 11, 9),
		100, "Deluxe", holidays, rules)

	require.NoError(t, err)
	assert.Equal(t, "Holiday: Deepavali", breakdown[0].Notes)
}

func TestCalculatePriceBestRuleWins(t *testing.T) {
	rules := []models.RateRule{
		{Name: "Promo A", StartDate: date(2026, 6, 1), EndDate: date(2026, 6, 30), RateMultiplier: 1.2, IsActive: true},
		{Name: "Promo B", StartDate: date(2026, 6, 1), EndDate: date(2026, 6, 30), RateMultiplier: 1.6, IsActive: true},
	}

	total, breakdown, err := CalculatePrice(
		date(2026, 6, 15), date(2026, 6, 16),
		100, "Deluxe", nil, rules)

	require.NoError(t, err)
	assert.Equal(t, 160.0, total)
	assert.Equal(t, "Rate rule: Promo B", breakdown[0].Notes)
}

func TestCalculatePriceBlackoutRejectsWholeRange(t *testing.T) {
	holidays := []models.Holiday{
		{Name: "Chinese New Year", Date: date(2026, 2, 17), RateMultiplier: 2.5, IsBlackout: true},
	}

	total, breakdown, err := CalculatePrice(
		date(2026, 2, 15), date(2026, 2, 19),
		100, "Deluxe", holidays, nil)

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeBlackoutDate))
	assert.Zero(t, total)
	assert.Nil(t, breakdown)
}

func TestCalculatePriceCheckoutOnBlackoutAllowed(t *testing.T) {
	holidays := []models.Holiday{
		{Name: "Chinese New Year", Date: date(2026, 2, 17), RateMultiplier: 2.5, IsBlackout: true},
	}

	// Ngày check-out không phải một đêm nghỉ nên blackout không chặn
	total, _, err := CalculatePrice(
		date(2026, 2, 15), date(2026, 2, 17),
		100, "Deluxe", holidays, nil)

	require.NoError(t, err)
	assert.Equal(t, 200.0, total)
}

func TestCalculatePriceValidation(t *testing.T) {
	_, _, err := CalculatePrice(date(2026, 3, 13), date(2026, 3, 10), 100, "Deluxe", nil, nil)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	_, _, err = CalculatePrice(date(2026, 3, 10), date(2026, 3, 10), 100, "Deluxe", nil, nil)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	_, _, err = CalculatePrice(date(2026, 3, 10), date(2026, 3, 13), 0, "Deluxe", nil, nil)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	_, _, err = CalculatePrice(date(2026, 3, 10), date(2026, 3, 13), -50, "Deluxe", nil, nil)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
}

func TestCalculatePriceRounding(t *testing.T) {
	rules := []models.RateRule{
		{Name: "Odd promo", StartDate: date(2026, 4, 1), EndDate: date(2026, 4, 30), RateMultiplier: 1.15, IsActive: true},
	}

	total, breakdown, err := CalculatePrice(
		date(2026, 4, 10), date(2026, 4, 11),
		99.99, "Deluxe", nil, rules)

	require.NoError(t, err)
	assert.Equal(t, 114.99, breakdown[0].Total)
	assert.Equal(t, 114.99, total)
}

func TestCalculatePriceNeverBelowBase(t *testing.T) {
	holidays := []models.Holiday{
		{Name: "Quiet day", Date: date(2026, 7, 1), RateMultiplier: 1.0},
	}
	rules := []models.RateRule{
		{Name: "Long stay", StartDate: date(2026, 7, 1), EndDate: date(2026, 7, 31), RateMultiplier: 1.0, IsActive: true},
	}

	total, _, err := CalculatePrice(
		date(2026, 7, 1), date(2026, 7, 4),
		120, "Deluxe", holidays, rules)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, total, 360.0)
}
