package notification

// RecipientType selects the fan-out target of a system notification.
type RecipientType string

const (
	RecipientManagers RecipientType = "managers"
	RecipientEmployee RecipientType = "employee"
)

// CreateSystemNotificationRequest is the narrow contract the automation
// engine uses to emit notifications.
type CreateSystemNotificationRequest struct {
	Type          NotificationType
	Title         string
	Message       string
	Link          *string
	WorkspaceID   string
	RecipientType RecipientType
	EmployeeEmail string // required for RecipientEmployee
}
