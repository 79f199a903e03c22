package validator

import (
	"testing"
	"time"

	"hotel/errors"
	"hotel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("10/03/2026")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))

	_, err = ParseDate("2026-13-40")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))
}

func TestParseDateRange(t *testing.T) {
	in, out, err := ParseDateRange("2026-03-10", "2026-03-12")
	require.NoError(t, err)
	assert.True(t, out.After(in))

	_, _, err = ParseDateRange("2026-03-12", "2026-03-10")
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	// Một đêm tối thiểu: check_in == check_out không hợp lệ
	_, _, err = ParseDateRange("2026-03-10", "2026-03-10")
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	_, _, err = ParseDateRange("bad", "2026-03-10")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))
}

func TestValidateCustomer(t *testing.T) {
	assert.NoError(t, ValidateCustomer("Tan Ah Kow", "tan@example.com", "+60123456789"))

	err := ValidateCustomer("", "tan@example.com", "+60123456789")
	assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))

	err = ValidateCustomer("Tan Ah Kow", "not-an-email", "+60123456789")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidEmail))

	err = ValidateCustomer("Tan Ah Kow", "tan@example.com", "abc")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidPhone))
}

func TestValidateUser(t *testing.T) {
	user := &models.User{Name: "Staff", Email: "staff@example.com", Password: "secret1", Role: models.RoleEmployee}
	assert.NoError(t, ValidateUser(user))

	user.Password = "abc"
	err := ValidateUser(user)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	user.Password = "secret1"
	user.Email = "bad"
	err = ValidateUser(user)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidEmail))

	user.Email = "staff@example.com"
	user.Role = 9
	err = ValidateUser(user)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRole))
}

func TestValidateMultiplier(t *testing.T) {
	assert.NoError(t, ValidateMultiplier(1.0))
	assert.NoError(t, ValidateMultiplier(2.5))

	err := ValidateMultiplier(0.8)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
}
