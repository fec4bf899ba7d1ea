package automation

import (
	"context"
	"fmt"
	"time"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/automation"
)

// lockGraceDays is the correction window after a month ends. Entries of a
// month stay editable until the grace period has passed.
const lockGraceDays = 5

const autoLockActor = "system-autolock"

// LockMonthTimeEntries implements automation.AutomationService.
//
// Only GEPRUEFT entries transition; everything still in the review pipeline
// is left alone and reported to payroll as missing. Locking the same month
// twice changes nothing on the second run.
func (s *AutomationServiceImpl) LockMonthTimeEntries(ctx context.Context, workspaceID string, year, month int) (automation.LockResult, error) {
	if month < 1 || month > 12 {
		return automation.LockResult{}, automation.ErrInvalidMonth
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	locked, err := s.TimeEntryRepository.ConfirmReviewedInRange(ctx, workspaceID, from, to, autoLockActor, s.now())
	if err != nil {
		return automation.LockResult{}, fmt.Errorf("failed to confirm reviewed entries: %w", err)
	}

	return automation.LockResult{
		Locked: locked,
		Month:  fmt.Sprintf("%04d-%02d", year, month),
	}, nil
}

// IsMonthLocked reports whether the month containing entryDate is closed for
// edits, i.e. the grace period after month end has passed.
func (s *AutomationServiceImpl) IsMonthLocked(entryDate time.Time) bool {
	return isMonthLockedAt(entryDate, s.now())
}

func isMonthLockedAt(entryDate, at time.Time) bool {
	// Day 0 of the next month is the last day of the entry's month. The
	// grace period ends at midnight of the fifth day after it, so a February
	// entry locks once March 5, 00:00 has passed.
	monthEnd := time.Date(entryDate.Year(), entryDate.Month()+1, 0, 0, 0, 0, 0, entryDate.Location())
	return at.After(monthEnd.AddDate(0, 0, lockGraceDays))
}
