package notification

import "context"

// Service is the notification sink consumed by the automation engine.
type Service interface {
	// CreateSystemNotification fans the message out to all workspace
	// managers, or to the single user resolved by employee email.
	CreateSystemNotification(ctx context.Context, req CreateSystemNotificationRequest) error
}
