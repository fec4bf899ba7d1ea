package notification

import "time"

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeShiftsCancelledAbsence NotificationType = "SHIFTS_CANCELLED_ABSENCE"
	TypeOvertimeAlert          NotificationType = "OVERTIME_ALERT"
	TypeSwapCompleted          NotificationType = "SWAP_COMPLETED"
	TypeAbsenceApproved        NotificationType = "ABSENCE_APPROVED"
)

// Notification is a write-only output of the automation engine; delivery
// (in-app, email, WhatsApp) happens downstream of the row.
type Notification struct {
	ID          string
	Type        NotificationType
	Title       string
	Message     string
	Link        *string
	UserID      string
	WorkspaceID string
	IsRead      bool
	CreatedAt   time.Time
}
