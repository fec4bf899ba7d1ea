package automation

import (
	"context"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/timeaccount"
)

// AutomationService is the rule engine behind scheduling, absence and
// payroll automation. All methods scoped to a workspace touch only that
// workspace's rows.
type AutomationService interface {
	// CheckShiftConflicts is read-only and safe to call speculatively.
	// An empty result means the assignment may proceed.
	CheckShiftConflicts(ctx context.Context, p CheckConflictsParams) ([]ShiftConflict, error)

	// CascadeAbsenceApproval cancels all active shifts inside the absence
	// window and emits one aggregated manager notification. Idempotent:
	// already-cancelled shifts are not found again on retry.
	CascadeAbsenceApproval(ctx context.Context, p CascadeParams) (CascadeResult, error)

	// CreateRecurringShifts projects the base shift forward week by week,
	// skipping conflicting weeks without aborting.
	CreateRecurringShifts(ctx context.Context, p RecurringParams) (RecurringResult, error)

	// TryAutoApproveAbsence approves sick leave unconditionally and other
	// categories only when no active shifts fall into the window. Returns
	// false when the request is left for human review.
	TryAutoApproveAbsence(ctx context.Context, absenceID string) (bool, error)

	// TryAutoApproveSwap executes an accepted swap when neither party
	// would incur a new conflict; a two-way trade never partially executes.
	TryAutoApproveSwap(ctx context.Context, swapID string) (bool, error)

	// GenerateTimeEntries creates draft time entries for past shifts that
	// have none yet, applying the statutory break deduction.
	GenerateTimeEntries(ctx context.Context, workspaceID string) (GenerateResult, error)

	// RecalculateTimeAccount re-derives the rolling balance from confirmed
	// entries. Returns nil when the employee has no account.
	RecalculateTimeAccount(ctx context.Context, employeeID string) (*timeaccount.TimeAccount, error)

	// CheckOvertimeAlerts sweeps the current week and batches one manager
	// notification when employees exceed their contracted hours.
	CheckOvertimeAlerts(ctx context.Context, workspaceID string) (OvertimeResult, error)

	// LockMonthTimeEntries bulk-confirms all reviewed entries of the month.
	LockMonthTimeEntries(ctx context.Context, workspaceID string, year, month int) (LockResult, error)
}
