package automation

import (
	"context"
	"fmt"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/automation"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/shift"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/timeentry"
	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/arbzg"
	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/timeutil"
)

// GenerateTimeEntries implements automation.AutomationService.
//
// Shifts are processed one by one; a failure on one shift aborts the sweep
// but everything created so far stays. The next run picks up where this one
// stopped because processed shifts are COMPLETED and carry a linked entry.
func (s *AutomationServiceImpl) GenerateTimeEntries(ctx context.Context, workspaceID string) (automation.GenerateResult, error) {
	today := dateOnly(s.now())

	shifts, err := s.ShiftRepository.FindUnprocessedBefore(ctx, workspaceID, today)
	if err != nil {
		return automation.GenerateResult{}, fmt.Errorf("failed to find unprocessed shifts: %w", err)
	}

	result := automation.GenerateResult{}
	for i := range shifts {
		sh := &shifts[i]

		exists, err := s.TimeEntryRepository.ExistsForShift(ctx, sh.ID)
		if err != nil {
			return result, fmt.Errorf("failed to check shift entry: %w", err)
		}
		if exists {
			continue
		}

		duplicate, err := s.TimeEntryRepository.ExistsDuplicate(ctx, sh.EmployeeID, sh.Date, sh.StartTime, sh.EndTime)
		if err != nil {
			return result, fmt.Errorf("failed to check duplicate entry: %w", err)
		}
		if duplicate {
			continue
		}

		gross := timeutil.CalcGrossMinutes(sh.StartTime, sh.EndTime)
		breakMin := arbzg.CalcLegalBreak(gross)

		shiftID := sh.ID
		_, err = s.TimeEntryRepository.Create(ctx, &timeentry.TimeEntry{
			EmployeeID:   sh.EmployeeID,
			WorkspaceID:  sh.WorkspaceID,
			Date:         sh.Date,
			StartTime:    sh.StartTime,
			EndTime:      sh.EndTime,
			BreakMinutes: breakMin,
			GrossMinutes: gross,
			NetMinutes:   timeutil.CalcNetMinutes(gross, breakMin),
			Status:       timeentry.StatusEntwurf,
			ShiftID:      &shiftID,
		})
		if err != nil {
			return result, fmt.Errorf("failed to create time entry: %w", err)
		}

		if err := s.ShiftRepository.UpdateStatus(ctx, sh.ID, shift.StatusCompleted); err != nil {
			return result, fmt.Errorf("failed to complete shift: %w", err)
		}

		result.Created++
	}

	return result, nil
}
