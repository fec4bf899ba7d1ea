package automation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/automation"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/notification"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/shift"
)

func cascadeParams(from, to time.Time) automation.CascadeParams {
	return automation.CascadeParams{
		AbsenceID:   "abs-1",
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		StartDate:   from,
		EndDate:     to,
		ReviewerID:  "mgr-1",
	}
}

func TestCascadeAbsenceApproval_NoShifts(t *testing.T) {
	env := newTestEnv()
	env.seedManager("mgr-1")

	result, err := env.svc.CascadeAbsenceApproval(context.Background(), cascadeParams(day(2025, time.March, 20), day(2025, time.March, 22)))

	require.NoError(t, err)
	assert.Equal(t, 0, result.CancelledShifts)
	assert.Empty(t, env.notifications.All())
}

func TestCascadeAbsenceApproval_CancelsShiftsInWindow(t *testing.T) {
	env := newTestEnv()
	env.seedManager("mgr-1")
	env.seedManager("mgr-2")
	env.seedEmployee("emp-1", "Anna", "Schmidt")

	inWindow1 := env.shifts.Seed(shift.Shift{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 20),
		StartTime:   "09:00",
		EndTime:     "17:00",
	})
	inWindow2 := env.shifts.Seed(shift.Shift{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 21),
		StartTime:   "09:00",
		EndTime:     "17:00",
		Status:      shift.StatusConfirmed,
	})
	outside := env.shifts.Seed(shift.Shift{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 24),
		StartTime:   "09:00",
		EndTime:     "17:00",
	})

	result, err := env.svc.CascadeAbsenceApproval(context.Background(), cascadeParams(day(2025, time.March, 20), day(2025, time.March, 22)))

	require.NoError(t, err)
	assert.Equal(t, 2, result.CancelledShifts)

	for _, id := range []string{inWindow1.ID, inWindow2.ID} {
		s, err := env.shifts.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, shift.StatusCancelled, s.Status)
	}
	untouched, err := env.shifts.GetByID(context.Background(), outside.ID)
	require.NoError(t, err)
	assert.Equal(t, shift.StatusScheduled, untouched.Status)

	notifications := env.notifications.All()
	require.Len(t, notifications, 2) // one row per manager
	n := notifications[0]
	assert.Equal(t, notification.TypeShiftsCancelledAbsence, n.Type)
	assert.Equal(t, "Schichten abgesagt wegen Abwesenheit", n.Title)
	assert.Equal(t, "2 Schicht(en) von Anna Schmidt wurden wegen genehmigter Abwesenheit abgesagt und benötigen Vertretung.", n.Message)
	require.NotNil(t, n.Link)
	assert.Equal(t, "/schichtplan", *n.Link)
}

func TestCascadeAbsenceApproval_Idempotent(t *testing.T) {
	env := newTestEnv()
	env.seedManager("mgr-1")
	env.seedEmployee("emp-1", "Anna", "Schmidt")
	env.shifts.Seed(shift.Shift{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 20),
		StartTime:   "09:00",
		EndTime:     "17:00",
	})

	first, err := env.svc.CascadeAbsenceApproval(context.Background(), cascadeParams(day(2025, time.March, 20), day(2025, time.March, 20)))
	require.NoError(t, err)
	assert.Equal(t, 1, first.CancelledShifts)

	second, err := env.svc.CascadeAbsenceApproval(context.Background(), cascadeParams(day(2025, time.March, 20), day(2025, time.March, 20)))
	require.NoError(t, err)
	assert.Equal(t, 0, second.CancelledShifts)
	assert.Len(t, env.notifications.All(), 1)
}
