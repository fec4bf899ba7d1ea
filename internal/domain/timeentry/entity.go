package timeentry

import "time"

// Status of a time entry in the review workflow
type Status string

const (
	StatusEntwurf         Status = "ENTWURF"
	StatusEingereicht     Status = "EINGEREICHT"
	StatusKorrektur       Status = "KORREKTUR"
	StatusZurueckgewiesen Status = "ZURUECKGEWIESEN"
	StatusGeprueft        Status = "GEPRUEFT"
	StatusBestaetigt      Status = "BESTAETIGT"
)

// TimeEntry records actually worked time. NetMinutes is always
// GrossMinutes - BreakMinutes, floored at zero. An entry generated from a
// shift keeps a link via ShiftID.
type TimeEntry struct {
	ID           string
	EmployeeID   string
	WorkspaceID  string
	Date         time.Time // date only
	StartTime    string
	EndTime      string
	BreakMinutes int
	GrossMinutes int
	NetMinutes   int
	Status       Status
	ShiftID      *string
	ConfirmedAt  *time.Time
	ConfirmedBy  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
