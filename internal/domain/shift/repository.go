package shift

import (
	"context"
	"time"
)

// ShiftRepository defines the shift persistence interface
type ShiftRepository interface {
	GetByID(ctx context.Context, id string) (*Shift, error)

	// FindActiveByDate returns all non-cancelled shifts of the employee on
	// the given day. excludeShiftID may be empty; when set, that shift is
	// left out (used when editing a shift against itself).
	FindActiveByDate(ctx context.Context, employeeID, workspaceID string, date time.Time, excludeShiftID string) ([]Shift, error)

	// FindActiveInRange returns all non-cancelled shifts of the employee
	// with from <= date <= to.
	FindActiveInRange(ctx context.Context, employeeID, workspaceID string, from, to time.Time) ([]Shift, error)

	// LatestEndingOnDate returns the non-cancelled shift with the latest end
	// time on the given day, or nil when the day has none.
	LatestEndingOnDate(ctx context.Context, employeeID, workspaceID string, date time.Time) (*Shift, error)

	// EarliestStartingOnDate returns the non-cancelled shift with the
	// earliest start time on the given day, or nil when the day has none.
	EarliestStartingOnDate(ctx context.Context, employeeID, workspaceID string, date time.Time) (*Shift, error)

	// FindUnprocessedBefore returns shifts dated strictly before the given
	// day whose status is SCHEDULED, CONFIRMED or COMPLETED.
	FindUnprocessedBefore(ctx context.Context, workspaceID string, before time.Time) ([]Shift, error)

	Create(ctx context.Context, s *Shift) (*Shift, error)

	// CancelByIDs bulk-transitions the given shifts to CANCELLED and returns
	// the number of rows changed.
	CancelByIDs(ctx context.Context, ids []string) (int, error)

	ReassignEmployee(ctx context.Context, shiftID, employeeID string) error
	UpdateStatus(ctx context.Context, shiftID string, status Status) error
}
