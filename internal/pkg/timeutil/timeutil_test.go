package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinutes(t *testing.T) {
	assert.Equal(t, 0, ToMinutes("00:00"))
	assert.Equal(t, 555, ToMinutes("09:15"))
	assert.Equal(t, 1439, ToMinutes("23:59"))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "00:00", FormatMinutes(0))
	assert.Equal(t, "09:15", FormatMinutes(555))
	assert.Equal(t, "23:59", FormatMinutes(1439))
}

func TestTimesOverlap(t *testing.T) {
	tests := []struct {
		name         string
		aStart, aEnd string
		bStart, bEnd string
		want         bool
	}{
		{"disjoint ranges", "08:00", "12:00", "13:00", "17:00", false},
		{"partial overlap", "08:00", "12:00", "11:00", "15:00", true},
		{"contained range", "08:00", "18:00", "10:00", "12:00", true},
		{"touching endpoints do not overlap", "08:00", "12:00", "12:00", "16:00", false},
		{"night shift overlaps early morning", "22:00", "06:00", "05:00", "09:00", true},
		{"night shift vs evening", "22:00", "06:00", "18:00", "21:00", false},
		{"both wrap midnight", "22:00", "04:00", "23:00", "02:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimesOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestCalcRestBetween(t *testing.T) {
	// End of day N to start of day N+1.
	assert.Equal(t, 11*60, CalcRestBetween("20:00", "07:00", true))
	// Night shift ending at 06:00, next shift at 14:00 same day.
	assert.Equal(t, 8*60, CalcRestBetween("06:00", "14:00", false))
	// Late end, early start: only 6h rest.
	assert.Equal(t, 6*60, CalcRestBetween("23:00", "05:00", true))
}

func TestCalcGrossMinutes(t *testing.T) {
	assert.Equal(t, 8*60, CalcGrossMinutes("09:00", "17:00"))
	// Overnight shift.
	assert.Equal(t, 8*60, CalcGrossMinutes("22:00", "06:00"))
	// Zero-length reads as a full day.
	assert.Equal(t, 24*60, CalcGrossMinutes("08:00", "08:00"))
}

func TestCalcNetMinutes(t *testing.T) {
	assert.Equal(t, 450, CalcNetMinutes(480, 30))
	assert.Equal(t, 0, CalcNetMinutes(20, 45))
}

func TestToIndustrialHours(t *testing.T) {
	assert.Equal(t, 7.5, ToIndustrialHours(450))
	assert.Equal(t, 0.25, ToIndustrialHours(15))
}
