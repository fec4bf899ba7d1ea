package automation

import (
	"time"

	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/validator"
)

// CheckConflictsParams describes a proposed shift assignment.
type CheckConflictsParams struct {
	EmployeeID     string
	WorkspaceID    string
	Date           time.Time // date only
	StartTime      string    // HH:mm
	EndTime        string    // HH:mm
	ExcludeShiftID string    // optional, for editing an existing shift
}

// CascadeParams identifies the approved absence driving the cascade.
type CascadeParams struct {
	AbsenceID   string
	EmployeeID  string
	WorkspaceID string
	StartDate   time.Time
	EndDate     time.Time
	ReviewerID  string
}

// CascadeResult reports how many shifts the cascade cancelled.
type CascadeResult struct {
	CancelledShifts int `json:"cancelled_shifts"`
}

// BaseShift is the template projected forward by the recurring generator.
type BaseShift struct {
	EmployeeID string
	Date       time.Time // date only
	StartTime  string
	EndTime    string
	LocationID *string
	Notes      *string
}

// RecurringParams drives the recurring shift generator.
type RecurringParams struct {
	BaseShift   BaseShift
	RepeatWeeks int // 1..52
	WorkspaceID string
}

// RecurringResult is the per-run audit of the recurring generator. Partial
// success is the normal case: skipped weeks are reported, not errors.
type RecurringResult struct {
	Created   int      `json:"created"`
	Skipped   int      `json:"skipped"`
	Conflicts []string `json:"conflicts"`
}

// GenerateResult reports how many draft time entries were created.
type GenerateResult struct {
	Created int `json:"created"`
}

// OvertimeResult lists the formatted overtime alerts of one sweep.
type OvertimeResult struct {
	Alerts []string `json:"alerts"`
}

// LockResult reports the outcome of a payroll month-lock.
type LockResult struct {
	Locked int    `json:"locked"`
	Month  string `json:"month"` // YYYY-MM
}

// TimeAccountResult is the JSON shape of a freshly recalculated account.
type TimeAccountResult struct {
	EmployeeID     string    `json:"employee_id"`
	BalanceMinutes int       `json:"balance_minutes"`
	LastCalculated time.Time `json:"last_calculated"`
}

// ============= HTTP request DTOs =============

// CheckConflictsRequest is the JSON body of POST /automations/check-conflicts.
type CheckConflictsRequest struct {
	EmployeeID     string `json:"employee_id"`
	Date           string `json:"date"` // YYYY-MM-DD
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	ExcludeShiftID string `json:"exclude_shift_id,omitempty"`
}

func (r CheckConflictsRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:mm"})
	}
	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:mm"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RecurringShiftsRequest is the JSON body of POST /automations/recurring-shifts.
type RecurringShiftsRequest struct {
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"` // YYYY-MM-DD, base shift date
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	LocationID  *string `json:"location_id,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	RepeatWeeks int     `json:"repeat_weeks"`
}

func (r RecurringShiftsRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:mm"})
	}
	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:mm"})
	}
	if r.RepeatWeeks < 1 || r.RepeatWeeks > 52 {
		errs = append(errs, validator.ValidationError{Field: "repeat_weeks", Message: "must be between 1 and 52"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PayrollLockRequest is the JSON body of POST /automations/payroll-lock.
type PayrollLockRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-12
}

func (r PayrollLockRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
