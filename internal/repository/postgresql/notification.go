package postgresql

import (
	"context"
	"fmt"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/notification"
	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/database"
)

type notificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.NotificationRepository {
	return &notificationRepository{db: db}
}

// Create implements notification.NotificationRepository.
func (r *notificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (type, title, message, link, user_id, workspace_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		n.Type, n.Title, n.Message, n.Link, n.UserID, n.WorkspaceID,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// CreateBatch implements notification.NotificationRepository.
func (r *notificationRepository) CreateBatch(ctx context.Context, ns []*notification.Notification) error {
	if len(ns) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (type, title, message, link, user_id, workspace_id)
		SELECT * FROM unnest($1::text[], $2::text[], $3::text[], $4::text[], $5::uuid[], $6::uuid[])
	`

	types := make([]string, len(ns))
	titles := make([]string, len(ns))
	messages := make([]string, len(ns))
	links := make([]*string, len(ns))
	userIDs := make([]string, len(ns))
	workspaceIDs := make([]string, len(ns))
	for i, n := range ns {
		types[i] = string(n.Type)
		titles[i] = n.Title
		messages[i] = n.Message
		links[i] = n.Link
		userIDs[i] = n.UserID
		workspaceIDs[i] = n.WorkspaceID
	}

	if _, err := q.Exec(ctx, query, types, titles, messages, links, userIDs, workspaceIDs); err != nil {
		return fmt.Errorf("failed to create notifications: %w", err)
	}

	return nil
}
