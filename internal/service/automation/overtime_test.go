package automation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/notification"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/timeaccount"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/timeentry"
)

func seedWeekEntry(env *testEnv, employeeID string, date time.Time, netMinutes int, status timeentry.Status) {
	env.timeEntries.Seed(timeentry.TimeEntry{
		EmployeeID:  employeeID,
		WorkspaceID: testWorkspace,
		Date:        date,
		StartTime:   "09:00",
		EndTime:     "21:00",
		NetMinutes:  netMinutes,
		Status:      status,
	})
}

func TestCheckOvertimeAlerts_ReportsEmployeesOverContract(t *testing.T) {
	env := newTestEnv()
	env.seedManager("mgr-1")
	env.seedEmployee("emp-1", "Max", "Muster")
	env.seedEmployee("emp-2", "Erika", "Beispiel")
	env.timeAccounts.Seed(timeaccount.TimeAccount{EmployeeID: "emp-1", WorkspaceID: testWorkspace, ContractHours: 40})
	env.timeAccounts.Seed(timeaccount.TimeAccount{EmployeeID: "emp-2", WorkspaceID: testWorkspace, ContractHours: 40})

	// Week of Monday 2025-03-17. emp-1 is 150 minutes over 40h.
	seedWeekEntry(env, "emp-1", day(2025, time.March, 17), 1300, timeentry.StatusEingereicht)
	seedWeekEntry(env, "emp-1", day(2025, time.March, 18), 1250, timeentry.StatusGeprueft)
	seedWeekEntry(env, "emp-2", day(2025, time.March, 17), 1200, timeentry.StatusBestaetigt)

	result, err := env.svc.CheckOvertimeAlerts(context.Background(), testWorkspace)

	require.NoError(t, err)
	require.Len(t, result.Alerts, 1)
	assert.Equal(t, "Max Muster: 2.5h Überstunden", result.Alerts[0])

	notifications := env.notifications.All()
	require.Len(t, notifications, 1)
	n := notifications[0]
	assert.Equal(t, notification.TypeOvertimeAlert, n.Type)
	assert.Equal(t, "Überstunden-Warnung (1 Mitarbeiter)", n.Title)
	assert.Equal(t, "Max Muster: 2.5h Überstunden", n.Message)
	require.NotNil(t, n.Link)
	assert.Equal(t, "/zeitkonten", *n.Link)
}

func TestCheckOvertimeAlerts_DraftsAndLastWeekExcluded(t *testing.T) {
	env := newTestEnv()
	env.seedManager("mgr-1")
	env.seedEmployee("emp-1", "Max", "Muster")
	env.timeAccounts.Seed(timeaccount.TimeAccount{EmployeeID: "emp-1", WorkspaceID: testWorkspace, ContractHours: 40})

	// Exactly at the contract limit this week; the rest must not count.
	seedWeekEntry(env, "emp-1", day(2025, time.March, 17), 2400, timeentry.StatusGeprueft)
	seedWeekEntry(env, "emp-1", day(2025, time.March, 18), 600, timeentry.StatusEntwurf)
	seedWeekEntry(env, "emp-1", day(2025, time.March, 16), 600, timeentry.StatusBestaetigt) // Sunday before

	result, err := env.svc.CheckOvertimeAlerts(context.Background(), testWorkspace)

	require.NoError(t, err)
	assert.Empty(t, result.Alerts)
	assert.Empty(t, env.notifications.All())
}

func TestCheckOvertimeAlerts_FractionalContractHours(t *testing.T) {
	env := newTestEnv()
	env.seedManager("mgr-1")
	env.seedEmployee("emp-1", "Max", "Muster")
	env.timeAccounts.Seed(timeaccount.TimeAccount{EmployeeID: "emp-1", WorkspaceID: testWorkspace, ContractHours: 33.3})

	// Exactly at the contract limit: the threshold rounds to 1998 minutes,
	// it must not truncate to 1997 and flag this as overtime.
	seedWeekEntry(env, "emp-1", day(2025, time.March, 17), 1998, timeentry.StatusGeprueft)

	result, err := env.svc.CheckOvertimeAlerts(context.Background(), testWorkspace)

	require.NoError(t, err)
	assert.Empty(t, result.Alerts)
	assert.Empty(t, env.notifications.All())
}

func TestCheckOvertimeAlerts_NoAccountsNoNotification(t *testing.T) {
	env := newTestEnv()
	env.seedManager("mgr-1")

	result, err := env.svc.CheckOvertimeAlerts(context.Background(), testWorkspace)

	require.NoError(t, err)
	assert.Empty(t, result.Alerts)
	assert.Empty(t, env.notifications.All())
}
