package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2026-03-15")
	assert.True(t, ok)
	_, ok = IsValidDate("15.03.2026")
	assert.False(t, ok)
	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)
}

func TestIsValidClockTime(t *testing.T) {
	assert.True(t, IsValidClockTime("00:00"))
	assert.True(t, IsValidClockTime("23:59"))
	assert.True(t, IsValidClockTime("09:30"))
	assert.False(t, IsValidClockTime("24:00"))
	assert.False(t, IsValidClockTime("9:30"))
	assert.False(t, IsValidClockTime("09:60"))
	assert.False(t, IsValidClockTime("0930"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_time", Message: "must be HH:mm"},
		{Field: "employee_id", Message: "is required"},
	}
	assert.Equal(t, "start_time: must be HH:mm; employee_id: is required", errs.Error())
	assert.Equal(t, map[string]string{
		"start_time":  "must be HH:mm",
		"employee_id": "is required",
	}, errs.ToMap())
}
