package automation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/shift"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/timeentry"
)

func TestGenerateTimeEntries_CreatesDraftsForPastShifts(t *testing.T) {
	env := newTestEnv()
	past := env.shifts.Seed(shift.Shift{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 18),
		StartTime:   "09:00",
		EndTime:     "18:00",
	})
	// Today's shift must wait for the next run.
	env.shifts.Seed(shift.Shift{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 19),
		StartTime:   "09:00",
		EndTime:     "17:00",
	})

	result, err := env.svc.GenerateTimeEntries(context.Background(), testWorkspace)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)

	entries := env.timeEntries.All()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "emp-1", e.EmployeeID)
	assert.Equal(t, timeentry.StatusEntwurf, e.Status)
	assert.Equal(t, "09:00", e.StartTime)
	assert.Equal(t, "18:00", e.EndTime)
	assert.Equal(t, 540, e.GrossMinutes)
	assert.Equal(t, 30, e.BreakMinutes)
	assert.Equal(t, 510, e.NetMinutes)
	require.NotNil(t, e.ShiftID)
	assert.Equal(t, past.ID, *e.ShiftID)

	processed, err := env.shifts.GetByID(context.Background(), past.ID)
	require.NoError(t, err)
	assert.Equal(t, shift.StatusCompleted, processed.Status)
}

func TestGenerateTimeEntries_LongShiftGetsLongerBreak(t *testing.T) {
	env := newTestEnv()
	env.shifts.Seed(shift.Shift{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 15),
		StartTime:   "08:00",
		EndTime:     "18:00",
	})

	result, err := env.svc.GenerateTimeEntries(context.Background(), testWorkspace)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)

	entries := env.timeEntries.All()
	require.Len(t, entries, 1)
	assert.Equal(t, 600, entries[0].GrossMinutes)
	assert.Equal(t, 45, entries[0].BreakMinutes)
	assert.Equal(t, 555, entries[0].NetMinutes)
}

func TestGenerateTimeEntries_SkipsShiftWithLinkedEntry(t *testing.T) {
	env := newTestEnv()
	processed := env.shifts.Seed(shift.Shift{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 17),
		StartTime:   "09:00",
		EndTime:     "17:00",
		Status:      shift.StatusCompleted,
	})
	env.timeEntries.Seed(timeentry.TimeEntry{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 17),
		StartTime:   "09:00",
		EndTime:     "17:00",
		Status:      timeentry.StatusEingereicht,
		ShiftID:     &processed.ID,
	})

	result, err := env.svc.GenerateTimeEntries(context.Background(), testWorkspace)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Len(t, env.timeEntries.All(), 1)
}

func TestGenerateTimeEntries_SkipsManualDuplicate(t *testing.T) {
	env := newTestEnv()
	env.shifts.Seed(shift.Shift{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 16),
		StartTime:   "09:00",
		EndTime:     "17:00",
	})
	// The employee already booked this slot by hand, without a shift link.
	env.timeEntries.Seed(timeentry.TimeEntry{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 16),
		StartTime:   "09:00",
		EndTime:     "17:00",
		Status:      timeentry.StatusEingereicht,
	})

	result, err := env.svc.GenerateTimeEntries(context.Background(), testWorkspace)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
}

func TestGenerateTimeEntries_RejectedEntryIsNotADuplicate(t *testing.T) {
	env := newTestEnv()
	env.shifts.Seed(shift.Shift{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 16),
		StartTime:   "09:00",
		EndTime:     "17:00",
	})
	env.timeEntries.Seed(timeentry.TimeEntry{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 16),
		StartTime:   "09:00",
		EndTime:     "17:00",
		Status:      timeentry.StatusZurueckgewiesen,
	})

	result, err := env.svc.GenerateTimeEntries(context.Background(), testWorkspace)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
}

func TestGenerateTimeEntries_IgnoresCancelledShifts(t *testing.T) {
	env := newTestEnv()
	env.shifts.Seed(shift.Shift{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 18),
		StartTime:   "09:00",
		EndTime:     "17:00",
		Status:      shift.StatusCancelled,
	})

	result, err := env.svc.GenerateTimeEntries(context.Background(), testWorkspace)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Empty(t, env.timeEntries.All())
}
