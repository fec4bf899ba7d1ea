package employee

import "time"

// Employee carries the fields the automations need; the full profile lives
// in the CRUD layer.
type Employee struct {
	ID          string
	WorkspaceID string
	FirstName   string
	LastName    string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Name returns the display name used in notifications.
func (e *Employee) Name() string {
	return e.FirstName + " " + e.LastName
}
