package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/notification"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/user"
	"github.com/schichtwerk/schichtplan-backend-go/internal/repository/memory"
)

func TestCreateSystemNotification_ManagerFanOut(t *testing.T) {
	notifications := memory.NewNotificationRepository()
	users := memory.NewUserRepository()
	users.Seed(user.User{ID: "mgr-1", WorkspaceID: "ws-1", Email: "mgr1@example.com", Role: user.RoleManager})
	users.Seed(user.User{ID: "own-1", WorkspaceID: "ws-1", Email: "own@example.com", Role: user.RoleOwner})
	users.Seed(user.User{ID: "emp-1", WorkspaceID: "ws-1", Email: "emp@example.com", Role: user.RoleEmployee})
	users.Seed(user.User{ID: "mgr-9", WorkspaceID: "ws-other", Email: "mgr9@example.com", Role: user.RoleManager})

	svc := NewNotificationService(notifications, users)
	err := svc.CreateSystemNotification(context.Background(), notification.CreateSystemNotificationRequest{
		Type:          notification.TypeOvertimeAlert,
		Title:         "Überstunden-Warnung (1 Mitarbeiter)",
		Message:       "Max Muster: 2.5h Überstunden",
		WorkspaceID:   "ws-1",
		RecipientType: notification.RecipientManagers,
	})

	require.NoError(t, err)
	rows := notifications.All()
	require.Len(t, rows, 2)
	recipients := map[string]bool{}
	for _, n := range rows {
		recipients[n.UserID] = true
		assert.Equal(t, "ws-1", n.WorkspaceID)
	}
	assert.True(t, recipients["mgr-1"])
	assert.True(t, recipients["own-1"])
}

func TestCreateSystemNotification_EmployeeByEmail(t *testing.T) {
	notifications := memory.NewNotificationRepository()
	users := memory.NewUserRepository()
	users.Seed(user.User{ID: "usr-1", WorkspaceID: "ws-1", Email: "anna@example.com", Role: user.RoleEmployee})

	svc := NewNotificationService(notifications, users)
	err := svc.CreateSystemNotification(context.Background(), notification.CreateSystemNotificationRequest{
		Type:          notification.TypeAbsenceApproved,
		Title:         "Abwesenheit genehmigt",
		Message:       "Dein Antrag wurde automatisch genehmigt.",
		WorkspaceID:   "ws-1",
		RecipientType: notification.RecipientEmployee,
		EmployeeEmail: "anna@example.com",
	})

	require.NoError(t, err)
	rows := notifications.All()
	require.Len(t, rows, 1)
	assert.Equal(t, "usr-1", rows[0].UserID)
}

func TestCreateSystemNotification_EmployeeWithoutLogin(t *testing.T) {
	notifications := memory.NewNotificationRepository()
	users := memory.NewUserRepository()

	svc := NewNotificationService(notifications, users)
	err := svc.CreateSystemNotification(context.Background(), notification.CreateSystemNotificationRequest{
		Type:          notification.TypeAbsenceApproved,
		Title:         "Abwesenheit genehmigt",
		Message:       "Dein Antrag wurde automatisch genehmigt.",
		WorkspaceID:   "ws-1",
		RecipientType: notification.RecipientEmployee,
		EmployeeEmail: "nobody@example.com",
	})

	require.NoError(t, err)
	assert.Empty(t, notifications.All())
}

func TestCreateSystemNotification_UnknownRecipientType(t *testing.T) {
	svc := NewNotificationService(memory.NewNotificationRepository(), memory.NewUserRepository())

	err := svc.CreateSystemNotification(context.Background(), notification.CreateSystemNotificationRequest{
		Type:          notification.TypeOvertimeAlert,
		Title:         "x",
		Message:       "y",
		WorkspaceID:   "ws-1",
		RecipientType: "broadcast",
	})

	assert.ErrorIs(t, err, notification.ErrUnknownRecipientType)
}
