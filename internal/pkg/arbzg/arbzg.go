// Package arbzg implements the break and rest-period minima of the German
// Arbeitszeitgesetz (ArbZG).
package arbzg

// MinRestHours is the minimum rest between two shifts (ArbZG §5).
const MinRestHours = 11

// MinRestMinutes is MinRestHours expressed in minutes.
const MinRestMinutes = MinRestHours * 60

// CalcLegalBreak returns the statutory minimum break in minutes for the
// given gross working time (ArbZG §4):
//   - more than 9 hours: 45 minutes
//   - more than 6 hours: 30 minutes
func CalcLegalBreak(grossMinutes int) int {
	if grossMinutes > 9*60 {
		return 45
	}
	if grossMinutes > 6*60 {
		return 30
	}
	return 0
}

// EnsureLegalBreak returns the provided break, raised to the statutory
// minimum where necessary.
func EnsureLegalBreak(grossMinutes, providedBreakMinutes int) int {
	if legal := CalcLegalBreak(grossMinutes); providedBreakMinutes < legal {
		return legal
	}
	return providedBreakMinutes
}
