package timeentry

import (
	"context"
	"time"
)

// TimeEntryRepository defines the time entry persistence interface
type TimeEntryRepository interface {
	Create(ctx context.Context, e *TimeEntry) (*TimeEntry, error)

	ExistsForShift(ctx context.Context, shiftID string) (bool, error)

	// ExistsDuplicate reports whether a non-rejected entry with the same
	// employee, date and time range already exists.
	ExistsDuplicate(ctx context.Context, employeeID string, date time.Time, startTime, endTime string) (bool, error)

	// SumNetMinutes totals net minutes of the employee's entries with
	// from <= date <= to and a status in the given set.
	SumNetMinutes(ctx context.Context, employeeID string, from, to time.Time, statuses []Status) (int, error)

	// SumConfirmedNetMinutesSince totals net minutes of BESTAETIGT entries
	// with date >= from.
	SumConfirmedNetMinutesSince(ctx context.Context, employeeID string, from time.Time) (int, error)

	// ConfirmReviewedInRange bulk-transitions GEPRUEFT entries in the
	// inclusive date range to BESTAETIGT and returns the number of rows
	// changed.
	ConfirmReviewedInRange(ctx context.Context, workspaceID string, from, to time.Time, confirmedBy string, confirmedAt time.Time) (int, error)
}
