package validator

import (
	"regexp"
	"time"

	"hotel/constants"
	"hotel/errors"
	"hotel/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9\-\s]{7,20}$`)
)

// ParseDate đọc ngày theo định dạng API (YYYY-MM-DD)
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid date format. Use YYYY-MM-DD", err)
	}
	return d, nil
}

// ParseDateRange đọc và kiểm tra một khoảng nghỉ [checkIn, checkOut)
func ParseDateRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation, "Check-out date must be after check-in date", nil)
	}
	return in, out, nil
}

// ValidateCustomer kiểm tra thông tin khách trên yêu cầu đặt phòng
func ValidateCustomer(name, email, phone string) error {
	if name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Customer name is required", nil)
	}
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid customer email", nil)
	}
	if !phoneRegex.MatchString(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Invalid customer phone", nil)
	}
	return nil
}

// ValidateUser validate thông tin user khi đăng ký
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email is required", nil)
	}
	if !emailRegex.MatchString(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email", nil)
	}
	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password is required", nil)
	}
	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}
	if user.Role < models.RoleGuest || user.Role > models.RoleAdmin {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Invalid role", nil)
	}
	return nil
}

// ValidateMultiplier hệ số giá phải >= 1: phụ thu không được giảm giá gốc
func ValidateMultiplier(multiplier float64) error {
	if multiplier < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Rate multiplier must be at least 1.0", nil)
	}
	return nil
}
