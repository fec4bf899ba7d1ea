package availability

import "time"

// Type of an availability entry
type Type string

const (
	TypeVerfuegbar      Type = "VERFUEGBAR"
	TypeBevorzugt       Type = "BEVORZUGT"
	TypeNichtVerfuegbar Type = "NICHT_VERFUEGBAR"
)

// Availability is a recurring weekly preference of an employee. Weekday is
// ISO-style with 0 = Monday .. 6 = Sunday. A NICHT_VERFUEGBAR entry without
// a time range blocks the whole day.
type Availability struct {
	ID          string
	EmployeeID  string
	WorkspaceID string
	Weekday     int
	StartTime   *string // HH:mm, optional
	EndTime     *string // HH:mm, optional
	Type        Type
	ValidFrom   time.Time
	ValidUntil  *time.Time // nil = open ended
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
