package shift

import "time"

// Status represents the lifecycle state of a shift
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// ActiveStatuses are the states a shift can be in before it is turned into a
// time entry. CANCELLED shifts are ignored by every automation.
func ActiveStatuses() []Status {
	return []Status{StatusScheduled, StatusConfirmed, StatusCompleted}
}

// Shift is a planned working interval for one employee on one calendar day.
// StartTime/EndTime are local wall-clock "HH:mm" strings; an end time at or
// before the start time means the shift runs past midnight.
type Shift struct {
	ID          string
	EmployeeID  string
	WorkspaceID string
	Date        time.Time // date only, local midnight
	StartTime   string
	EndTime     string
	Status      Status
	LocationID  *string
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
