package memory

import (
	"context"
	"sync"
	"time"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/notification"
)

type NotificationRepository struct {
	mu            sync.RWMutex
	notifications []notification.Notification
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

// All returns a copy of every stored notification, for test assertions.
func (r *NotificationRepository) All() []notification.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]notification.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

func (r *NotificationRepository) Create(_ context.Context, n *notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n.ID = newID()
	n.CreatedAt = time.Now()
	r.notifications = append(r.notifications, *n)
	return nil
}

func (r *NotificationRepository) CreateBatch(ctx context.Context, ns []*notification.Notification) error {
	for _, n := range ns {
		if err := r.Create(ctx, n); err != nil {
			return err
		}
	}
	return nil
}
