// Package automation implements the rule engine of the platform: shift
// conflict detection with statutory rest enforcement, cascading effects of
// absence approval, recurring shift generation, auto-approval heuristics,
// time account recalculation, overtime alerts and the payroll month-lock.
//
// All rules are deterministic and follow the German Arbeitszeitgesetz where
// a statute applies.
package automation

import (
	"time"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/absence"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/automation"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/availability"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/employee"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/notification"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/shift"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/swap"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/timeaccount"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/timeentry"
	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/database"
)

type AutomationServiceImpl struct {
	tx database.TxManager
	shift.ShiftRepository
	absence.AbsenceRepository
	availability.AvailabilityRepository
	swap.SwapRepository
	timeentry.TimeEntryRepository
	timeaccount.TimeAccountRepository
	employee.EmployeeRepository
	notificationSvc notification.Service

	// now is swapped out in tests for deterministic clock arithmetic.
	now func() time.Time
}

func NewAutomationService(
	tx database.TxManager,
	shiftRepo shift.ShiftRepository,
	absenceRepo absence.AbsenceRepository,
	availabilityRepo availability.AvailabilityRepository,
	swapRepo swap.SwapRepository,
	timeEntryRepo timeentry.TimeEntryRepository,
	timeAccountRepo timeaccount.TimeAccountRepository,
	employeeRepo employee.EmployeeRepository,
	notificationSvc notification.Service,
) *AutomationServiceImpl {
	return &AutomationServiceImpl{
		tx:                     tx,
		ShiftRepository:        shiftRepo,
		AbsenceRepository:      absenceRepo,
		AvailabilityRepository: availabilityRepo,
		SwapRepository:         swapRepo,
		TimeEntryRepository:    timeEntryRepo,
		TimeAccountRepository:  timeAccountRepo,
		EmployeeRepository:     employeeRepo,
		notificationSvc:        notificationSvc,
		now:                    time.Now,
	}
}

var _ automation.AutomationService = (*AutomationServiceImpl)(nil)

// dateOnly drops the time-of-day component.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isoWeekday maps Go's Sunday-indexed weekday to 0 = Monday .. 6 = Sunday.
func isoWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
