package automation

import (
	"time"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/employee"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/user"
	"github.com/schichtwerk/schichtplan-backend-go/internal/repository/memory"
	notificationsvc "github.com/schichtwerk/schichtplan-backend-go/internal/service/notification"
)

const testWorkspace = "ws-1"

// testNow is a Wednesday; week start is Monday 2025-03-17.
var testNow = time.Date(2025, time.March, 19, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	svc *AutomationServiceImpl

	shifts         *memory.ShiftRepository
	absences       *memory.AbsenceRepository
	availabilities *memory.AvailabilityRepository
	swaps          *memory.SwapRepository
	timeEntries    *memory.TimeEntryRepository
	timeAccounts   *memory.TimeAccountRepository
	employees      *memory.EmployeeRepository
	users          *memory.UserRepository
	notifications  *memory.NotificationRepository
}

func newTestEnv() *testEnv {
	env := &testEnv{
		shifts:         memory.NewShiftRepository(),
		absences:       memory.NewAbsenceRepository(),
		availabilities: memory.NewAvailabilityRepository(),
		swaps:          memory.NewSwapRepository(),
		timeEntries:    memory.NewTimeEntryRepository(),
		timeAccounts:   memory.NewTimeAccountRepository(),
		employees:      memory.NewEmployeeRepository(),
		users:          memory.NewUserRepository(),
		notifications:  memory.NewNotificationRepository(),
	}

	env.svc = NewAutomationService(
		memory.NewTxManager(),
		env.shifts,
		env.absences,
		env.availabilities,
		env.swaps,
		env.timeEntries,
		env.timeAccounts,
		env.employees,
		notificationsvc.NewNotificationService(env.notifications, env.users),
	)
	env.svc.now = func() time.Time { return testNow }

	return env
}

// seedManager registers a user that receives manager fan-out notifications.
func (env *testEnv) seedManager(id string) {
	env.users.Seed(user.User{ID: id, WorkspaceID: testWorkspace, Email: id + "@example.com", Role: user.RoleManager})
}

func (env *testEnv) seedEmployee(id, firstName, lastName string) {
	env.employees.Seed(employee.Employee{ID: id, WorkspaceID: testWorkspace, FirstName: firstName, LastName: lastName})
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}
