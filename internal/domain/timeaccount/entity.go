package timeaccount

import "time"

// TimeAccount is the rolling overtime/undertime balance of one employee.
// CurrentBalance is derived from confirmed time entries and never edited by
// hand: balance = carryover + worked - expected since PeriodStart.
type TimeAccount struct {
	ID               string
	EmployeeID       string
	WorkspaceID      string
	ContractHours    float64 // weekly contracted hours
	CarryoverMinutes int
	CurrentBalance   int // minutes
	PeriodStart      time.Time
	LastCalculated   time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
