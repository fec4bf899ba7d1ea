package automation

import (
	"context"
	"fmt"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/automation"
	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/arbzg"
	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/timeutil"
)

// CheckShiftConflicts implements automation.AutomationService.
//
// All four checks run even after an earlier one fires, so the caller can
// present every reason at once. The function performs no writes and is safe
// to call speculatively.
func (s *AutomationServiceImpl) CheckShiftConflicts(ctx context.Context, p automation.CheckConflictsParams) ([]automation.ShiftConflict, error) {
	conflicts := []automation.ShiftConflict{}
	date := dateOnly(p.Date)

	// Overlapping shifts on the same day.
	existing, err := s.ShiftRepository.FindActiveByDate(ctx, p.EmployeeID, p.WorkspaceID, date, p.ExcludeShiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to load same-day shifts: %w", err)
	}
	for _, other := range existing {
		if timeutil.TimesOverlap(other.StartTime, other.EndTime, p.StartTime, p.EndTime) {
			conflicts = append(conflicts, automation.ShiftConflict{
				Type:       automation.ConflictOverlap,
				Message:    fmt.Sprintf("Überlappung mit bestehender Schicht %s–%s", other.StartTime, other.EndTime),
				ConflictID: other.ID,
			})
		}
	}

	// Approved absence covering this date.
	absences, err := s.AbsenceRepository.FindApprovedOnDate(ctx, p.EmployeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load absences: %w", err)
	}
	if len(absences) > 0 {
		conflicts = append(conflicts, automation.ShiftConflict{
			Type:       automation.ConflictAbsence,
			Message:    fmt.Sprintf("Mitarbeiter hat eine genehmigte Abwesenheit am %s", date.Format("2006-01-02")),
			ConflictID: absences[0].ID,
		})
	}

	// Employee marked as unavailable on this weekday.
	unavailable, err := s.AvailabilityRepository.FindUnavailable(ctx, p.EmployeeID, isoWeekday(date), date)
	if err != nil {
		return nil, fmt.Errorf("failed to load availabilities: %w", err)
	}
	for _, entry := range unavailable {
		if entry.StartTime != nil && entry.EndTime != nil {
			if timeutil.TimesOverlap(*entry.StartTime, *entry.EndTime, p.StartTime, p.EndTime) {
				conflicts = append(conflicts, automation.ShiftConflict{
					Type:       automation.ConflictUnavailable,
					Message:    fmt.Sprintf("Mitarbeiter ist %s–%s nicht verfügbar", *entry.StartTime, *entry.EndTime),
					ConflictID: entry.ID,
				})
			}
		} else {
			// No time range on the entry blocks the entire day.
			conflicts = append(conflicts, automation.ShiftConflict{
				Type:       automation.ConflictUnavailable,
				Message:    "Mitarbeiter ist an diesem Wochentag nicht verfügbar",
				ConflictID: entry.ID,
			})
		}
	}

	// Rest period (ArbZG §5): check against the latest shift of the previous
	// day and the earliest shift of the next day. Both may fire. Only the
	// nearest shift of each adjacent day is inspected; a split day is caught
	// by the same-day overlap check above.
	prevShift, err := s.ShiftRepository.LatestEndingOnDate(ctx, p.EmployeeID, p.WorkspaceID, date.AddDate(0, 0, -1))
	if err != nil {
		return nil, fmt.Errorf("failed to load previous-day shift: %w", err)
	}
	if prevShift != nil {
		rest := timeutil.CalcRestBetween(prevShift.EndTime, p.StartTime, true)
		if rest < arbzg.MinRestMinutes {
			conflicts = append(conflicts, automation.ShiftConflict{
				Type:    automation.ConflictRestPeriod,
				Message: fmt.Sprintf("Nur %dh %dmin Ruhezeit nach vorheriger Schicht (mind. %dh nötig, ArbZG §5)", rest/60, rest%60, arbzg.MinRestHours),
			})
		}
	}

	nextShift, err := s.ShiftRepository.EarliestStartingOnDate(ctx, p.EmployeeID, p.WorkspaceID, date.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to load next-day shift: %w", err)
	}
	if nextShift != nil {
		rest := timeutil.CalcRestBetween(p.EndTime, nextShift.StartTime, true)
		if rest < arbzg.MinRestMinutes {
			conflicts = append(conflicts, automation.ShiftConflict{
				Type:    automation.ConflictRestPeriod,
				Message: fmt.Sprintf("Nur %dh %dmin Ruhezeit bis zur nächsten Schicht (mind. %dh nötig, ArbZG §5)", rest/60, rest%60, arbzg.MinRestHours),
			})
		}
	}

	return conflicts, nil
}
