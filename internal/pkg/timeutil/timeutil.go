// Package timeutil contains wall-clock arithmetic for shift and time-entry
// calculations. All durations are handled in minutes; times are "HH:mm"
// strings as stored on shifts, availabilities and time entries.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ToMinutes parses an "HH:mm" string into minutes since midnight.
// Input is expected to be pre-validated by the API layer; malformed
// components parse as zero.
func ToMinutes(t string) int {
	h, m, _ := strings.Cut(t, ":")
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	return hours*60 + minutes
}

// FormatMinutes renders minutes since midnight back to "HH:mm".
func FormatMinutes(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// TimesOverlap reports whether the two wall-clock ranges intersect.
// An interval whose end is not after its start is treated as crossing
// midnight and extended by 24h before comparison.
func TimesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	a0 := ToMinutes(aStart)
	a1 := ToMinutes(aEnd)
	if a1 <= a0 {
		a1 += minutesPerDay
	}
	b0 := ToMinutes(bStart)
	b1 := ToMinutes(bEnd)
	if b1 <= b0 {
		b1 += minutesPerDay
	}
	return a0 < b1 && b0 < a1
}

// CalcRestBetween returns the rest minutes between the end of one shift and
// the start of the next. crossDay must be true when endTime belongs to day N
// and startTime to day N+1.
func CalcRestBetween(endTime, startTime string, crossDay bool) int {
	endMin := ToMinutes(endTime)
	startMin := ToMinutes(startTime)
	if crossDay {
		return minutesPerDay - endMin + startMin
	}
	return startMin - endMin
}

// CalcGrossMinutes returns the worked minutes between start and end,
// treating end <= start as an overnight shift.
func CalcGrossMinutes(start, end string) int {
	s := ToMinutes(start)
	e := ToMinutes(end)
	if e <= s {
		e += minutesPerDay
	}
	return e - s
}

// CalcNetMinutes returns gross minus break, never negative.
func CalcNetMinutes(grossMinutes, breakMinutes int) int {
	if net := grossMinutes - breakMinutes; net > 0 {
		return net
	}
	return 0
}

// ToIndustrialHours converts minutes to decimal hours (450 -> 7.5).
func ToIndustrialHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}
