package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/notification"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/user"
)

type NotificationServiceImpl struct {
	notification.NotificationRepository
	user.UserRepository
}

func NewNotificationService(
	notificationRepo notification.NotificationRepository,
	userRepo user.UserRepository,
) notification.Service {
	return &NotificationServiceImpl{
		NotificationRepository: notificationRepo,
		UserRepository:         userRepo,
	}
}

// CreateSystemNotification implements notification.Service.
func (s *NotificationServiceImpl) CreateSystemNotification(ctx context.Context, req notification.CreateSystemNotificationRequest) error {
	switch req.RecipientType {
	case notification.RecipientManagers:
		managerIDs, err := s.UserRepository.FindManagerIDs(ctx, req.WorkspaceID)
		if err != nil {
			return fmt.Errorf("failed to resolve managers: %w", err)
		}

		notifications := make([]*notification.Notification, 0, len(managerIDs))
		for _, id := range managerIDs {
			notifications = append(notifications, &notification.Notification{
				Type:        req.Type,
				Title:       req.Title,
				Message:     req.Message,
				Link:        req.Link,
				UserID:      id,
				WorkspaceID: req.WorkspaceID,
			})
		}

		return s.NotificationRepository.CreateBatch(ctx, notifications)

	case notification.RecipientEmployee:
		if req.EmployeeEmail == "" {
			return nil
		}

		userID, err := s.UserRepository.GetIDByEmail(ctx, req.EmployeeEmail)
		if err != nil {
			// An employee without a login simply receives nothing.
			if errors.Is(err, user.ErrUserNotFound) {
				return nil
			}
			return fmt.Errorf("failed to resolve user by email: %w", err)
		}

		return s.NotificationRepository.Create(ctx, &notification.Notification{
			Type:        req.Type,
			Title:       req.Title,
			Message:     req.Message,
			Link:        req.Link,
			UserID:      userID,
			WorkspaceID: req.WorkspaceID,
		})

	default:
		return notification.ErrUnknownRecipientType
	}
}
