package automation

import (
	"context"
	"fmt"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/automation"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/shift"
)

// CreateRecurringShifts implements automation.AutomationService.
//
// Each week is an independent unit: a conflict in week 5 must not roll back
// weeks 1-4, so the loop deliberately runs outside any transaction. Partial
// success is the expected outcome and is reported, not raised.
func (s *AutomationServiceImpl) CreateRecurringShifts(ctx context.Context, p automation.RecurringParams) (automation.RecurringResult, error) {
	if p.RepeatWeeks < 1 || p.RepeatWeeks > 52 {
		return automation.RecurringResult{}, automation.ErrInvalidRepeatWeeks
	}

	result := automation.RecurringResult{Conflicts: []string{}}
	base := p.BaseShift

	for week := 1; week <= p.RepeatWeeks; week++ {
		date := dateOnly(base.Date).AddDate(0, 0, week*7)

		conflicts, err := s.CheckShiftConflicts(ctx, automation.CheckConflictsParams{
			EmployeeID:  base.EmployeeID,
			WorkspaceID: p.WorkspaceID,
			Date:        date,
			StartTime:   base.StartTime,
			EndTime:     base.EndTime,
		})
		if err != nil {
			return automation.RecurringResult{}, fmt.Errorf("failed to check conflicts for week %d: %w", week, err)
		}

		if len(conflicts) > 0 {
			result.Skipped++
			result.Conflicts = append(result.Conflicts,
				fmt.Sprintf("KW+%d (%s): %s", week, date.Format("2006-01-02"), conflicts[0].Message))
			continue
		}

		_, err = s.ShiftRepository.Create(ctx, &shift.Shift{
			EmployeeID:  base.EmployeeID,
			WorkspaceID: p.WorkspaceID,
			Date:        date,
			StartTime:   base.StartTime,
			EndTime:     base.EndTime,
			Status:      shift.StatusScheduled,
			LocationID:  base.LocationID,
			Notes:       base.Notes,
		})
		if err != nil {
			return automation.RecurringResult{}, fmt.Errorf("failed to create shift for week %d: %w", week, err)
		}

		result.Created++
	}

	return result, nil
}
