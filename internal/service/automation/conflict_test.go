package automation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/absence"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/automation"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/availability"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/shift"
)

func checkParams(date time.Time, start, end string) automation.CheckConflictsParams {
	return automation.CheckConflictsParams{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        date,
		StartTime:   start,
		EndTime:     end,
	}
}

func TestCheckShiftConflicts_Clean(t *testing.T) {
	env := newTestEnv()

	conflicts, err := env.svc.CheckShiftConflicts(context.Background(), checkParams(day(2025, time.March, 20), "09:00", "17:00"))

	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestCheckShiftConflicts_Overlap(t *testing.T) {
	env := newTestEnv()
	existing := env.shifts.Seed(shift.Shift{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 20),
		StartTime:   "09:00",
		EndTime:     "17:00",
	})

	conflicts, err := env.svc.CheckShiftConflicts(context.Background(), checkParams(day(2025, time.March, 20), "16:00", "20:00"))

	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, automation.ConflictOverlap, conflicts[0].Type)
	assert.Equal(t, "Überlappung mit bestehender Schicht 09:00–17:00", conflicts[0].Message)
	assert.Equal(t, existing.ID, conflicts[0].ConflictID)
}

func TestCheckShiftConflicts_TouchingShiftsDoNotOverlap(t *testing.T) {
	env := newTestEnv()
	env.shifts.Seed(shift.Shift{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 20),
		StartTime:   "09:00",
		EndTime:     "13:00",
	})

	conflicts, err := env.svc.CheckShiftConflicts(context.Background(), checkParams(day(2025, time.March, 20), "13:00", "17:00"))

	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestCheckShiftConflicts_ExcludeShiftID(t *testing.T) {
	env := newTestEnv()
	existing := env.shifts.Seed(shift.Shift{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 20),
		StartTime:   "09:00",
		EndTime:     "17:00",
	})

	p := checkParams(day(2025, time.March, 20), "10:00", "18:00")
	p.ExcludeShiftID = existing.ID
	conflicts, err := env.svc.CheckShiftConflicts(context.Background(), p)

	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestCheckShiftConflicts_OvernightOverlap(t *testing.T) {
	env := newTestEnv()
	// 22:00-06:00 wraps past midnight and still collides with an early shift.
	env.shifts.Seed(shift.Shift{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 20),
		StartTime:   "22:00",
		EndTime:     "06:00",
	})

	conflicts, err := env.svc.CheckShiftConflicts(context.Background(), checkParams(day(2025, time.March, 20), "23:00", "03:00"))

	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, automation.ConflictOverlap, conflicts[0].Type)
}

func TestCheckShiftConflicts_ApprovedAbsence(t *testing.T) {
	env := newTestEnv()
	abs := env.absences.Seed(absence.AbsenceRequest{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Category:    absence.CategoryUrlaub,
		StartDate:   day(2025, time.March, 18),
		EndDate:     day(2025, time.March, 22),
		Status:      absence.StatusGenehmigt,
	})

	conflicts, err := env.svc.CheckShiftConflicts(context.Background(), checkParams(day(2025, time.March, 20), "09:00", "17:00"))

	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, automation.ConflictAbsence, conflicts[0].Type)
	assert.Equal(t, "Mitarbeiter hat eine genehmigte Abwesenheit am 2025-03-20", conflicts[0].Message)
	assert.Equal(t, abs.ID, conflicts[0].ConflictID)
}

func TestCheckShiftConflicts_PendingAbsenceIgnored(t *testing.T) {
	env := newTestEnv()
	env.absences.Seed(absence.AbsenceRequest{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Category:    absence.CategoryUrlaub,
		StartDate:   day(2025, time.March, 20),
		EndDate:     day(2025, time.March, 20),
		Status:      absence.StatusAusstehend,
	})

	conflicts, err := env.svc.CheckShiftConflicts(context.Background(), checkParams(day(2025, time.March, 20), "09:00", "17:00"))

	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestCheckShiftConflicts_UnavailableAllDay(t *testing.T) {
	env := newTestEnv()
	// 2025-03-20 is a Thursday, weekday index 3.
	env.availabilities.Seed(availability.Availability{
		EmployeeID: "emp-1",
		Type:       availability.TypeNichtVerfuegbar,
		Weekday:    3,
		ValidFrom:  day(2025, time.January, 1),
	})

	conflicts, err := env.svc.CheckShiftConflicts(context.Background(), checkParams(day(2025, time.March, 20), "09:00", "17:00"))

	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, automation.ConflictUnavailable, conflicts[0].Type)
	assert.Equal(t, "Mitarbeiter ist an diesem Wochentag nicht verfügbar", conflicts[0].Message)
}

func TestCheckShiftConflicts_UnavailableTimeWindow(t *testing.T) {
	env := newTestEnv()
	env.availabilities.Seed(availability.Availability{
		EmployeeID: "emp-1",
		Type:       availability.TypeNichtVerfuegbar,
		Weekday:    3,
		StartTime:  strPtr("14:00"),
		EndTime:    strPtr("18:00"),
		ValidFrom:  day(2025, time.January, 1),
	})

	morning, err := env.svc.CheckShiftConflicts(context.Background(), checkParams(day(2025, time.March, 20), "08:00", "12:00"))
	require.NoError(t, err)
	assert.Empty(t, morning)

	afternoon, err := env.svc.CheckShiftConflicts(context.Background(), checkParams(day(2025, time.March, 20), "12:00", "16:00"))
	require.NoError(t, err)
	require.Len(t, afternoon, 1)
	assert.Equal(t, "Mitarbeiter ist 14:00–18:00 nicht verfügbar", afternoon[0].Message)
}

func TestCheckShiftConflicts_RestAfterPreviousShift(t *testing.T) {
	env := newTestEnv()
	env.shifts.Seed(shift.Shift{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 19),
		StartTime:   "14:00",
		EndTime:     "22:00",
	})

	// 22:00 to 06:00 next day is 8h of rest, below the 11h minimum.
	conflicts, err := env.svc.CheckShiftConflicts(context.Background(), checkParams(day(2025, time.March, 20), "06:00", "14:00"))

	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, automation.ConflictRestPeriod, conflicts[0].Type)
	assert.Equal(t, "Nur 8h 0min Ruhezeit nach vorheriger Schicht (mind. 11h nötig, ArbZG §5)", conflicts[0].Message)
}

func TestCheckShiftConflicts_RestBeforeNextShift(t *testing.T) {
	env := newTestEnv()
	env.shifts.Seed(shift.Shift{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 21),
		StartTime:   "08:00",
		EndTime:     "16:00",
	})

	// Proposed shift ends 23:00, next shift starts 08:00: 9h of rest.
	conflicts, err := env.svc.CheckShiftConflicts(context.Background(), checkParams(day(2025, time.March, 20), "15:00", "23:00"))

	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, automation.ConflictRestPeriod, conflicts[0].Type)
	assert.Equal(t, "Nur 9h 0min Ruhezeit bis zur nächsten Schicht (mind. 11h nötig, ArbZG §5)", conflicts[0].Message)
}

func TestCheckShiftConflicts_SufficientRest(t *testing.T) {
	env := newTestEnv()
	env.shifts.Seed(shift.Shift{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 19),
		StartTime:   "09:00",
		EndTime:     "17:00",
	})

	// 17:00 to 09:00 next day is 16h of rest.
	conflicts, err := env.svc.CheckShiftConflicts(context.Background(), checkParams(day(2025, time.March, 20), "09:00", "17:00"))

	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestCheckShiftConflicts_MultipleReasonsReported(t *testing.T) {
	env := newTestEnv()
	env.shifts.Seed(shift.Shift{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Date:        day(2025, time.March, 20),
		StartTime:   "09:00",
		EndTime:     "17:00",
	})
	env.absences.Seed(absence.AbsenceRequest{
		EmployeeID:  "emp-1",
		WorkspaceID: testWorkspace,
		Category:    absence.CategoryUrlaub,
		StartDate:   day(2025, time.March, 20),
		EndDate:     day(2025, time.March, 20),
		Status:      absence.StatusGenehmigt,
	})

	conflicts, err := env.svc.CheckShiftConflicts(context.Background(), checkParams(day(2025, time.March, 20), "10:00", "18:00"))

	require.NoError(t, err)
	assert.Len(t, conflicts, 2)
}
