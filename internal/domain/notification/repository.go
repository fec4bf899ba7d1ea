package notification

import "context"

// NotificationRepository defines the notification persistence interface
type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	CreateBatch(ctx context.Context, ns []*Notification) error
}
