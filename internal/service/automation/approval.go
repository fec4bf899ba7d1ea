package automation

import (
	"context"
	"errors"
	"fmt"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/absence"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/automation"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/swap"
)

const (
	noteAutoApprovedSick        = "Automatisch genehmigt (Krankmeldung)"
	noteAutoApprovedNoConflicts = "Automatisch genehmigt (keine Konflikte)"
)

// TryAutoApproveAbsence implements automation.AutomationService.
//
// Sick leave is approved unconditionally and cascades into shift
// cancellation. Other categories are approved only when no active shifts
// fall into the window, in which case there is nothing to cascade. A request
// that is not AUSSTEHEND is left alone, which makes a retry a safe no-op.
func (s *AutomationServiceImpl) TryAutoApproveAbsence(ctx context.Context, absenceID string) (bool, error) {
	req, err := s.AbsenceRepository.GetByID(ctx, absenceID)
	if err != nil {
		if errors.Is(err, absence.ErrAbsenceNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load absence request: %w", err)
	}

	if req.Status != absence.StatusAusstehend {
		return false, nil
	}

	if req.Category == absence.CategoryKrank {
		if err := s.AbsenceRepository.Approve(ctx, absenceID, noteAutoApprovedSick); err != nil {
			return false, fmt.Errorf("failed to approve sick leave: %w", err)
		}

		_, err := s.CascadeAbsenceApproval(ctx, automation.CascadeParams{
			AbsenceID:   absenceID,
			EmployeeID:  req.EmployeeID,
			WorkspaceID: req.WorkspaceID,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			ReviewerID:  "system",
		})
		if err != nil {
			return false, err
		}

		return true, nil
	}

	conflicting, err := s.ShiftRepository.FindActiveInRange(ctx, req.EmployeeID, req.WorkspaceID, dateOnly(req.StartDate), dateOnly(req.EndDate))
	if err != nil {
		return false, fmt.Errorf("failed to find shifts in absence window: %w", err)
	}

	if len(conflicting) == 0 {
		if err := s.AbsenceRepository.Approve(ctx, absenceID, noteAutoApprovedNoConflicts); err != nil {
			return false, fmt.Errorf("failed to approve absence: %w", err)
		}
		return true, nil
	}

	// Shifts exist in the window: leave the request for human review.
	return false, nil
}

// TryAutoApproveSwap implements automation.AutomationService.
//
// A two-way trade never partially executes: both reassignments and the
// status transition run inside one transaction, and any conflict on either
// side aborts before anything is written.
func (s *AutomationServiceImpl) TryAutoApproveSwap(ctx context.Context, swapID string) (bool, error) {
	req, err := s.SwapRepository.GetByID(ctx, swapID)
	if err != nil {
		if errors.Is(err, swap.ErrSwapNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load swap request: %w", err)
	}

	if req.Status != swap.StatusAngenommen || req.TargetID == nil {
		return false, nil
	}

	requesterShift, err := s.ShiftRepository.GetByID(ctx, req.ShiftID)
	if err != nil {
		return false, fmt.Errorf("failed to load requester shift: %w", err)
	}

	// Can the target work the requester's shift? For a two-way trade the
	// target's own shift is being given up, so it does not count.
	excludeShiftID := ""
	if req.TargetShiftID != nil {
		excludeShiftID = *req.TargetShiftID
	}
	targetConflicts, err := s.CheckShiftConflicts(ctx, automation.CheckConflictsParams{
		EmployeeID:     *req.TargetID,
		WorkspaceID:    req.WorkspaceID,
		Date:           requesterShift.Date,
		StartTime:      requesterShift.StartTime,
		EndTime:        requesterShift.EndTime,
		ExcludeShiftID: excludeShiftID,
	})
	if err != nil {
		return false, err
	}
	if len(targetConflicts) > 0 {
		return false, nil
	}

	if req.IsTwoWay() {
		targetShift, err := s.ShiftRepository.GetByID(ctx, *req.TargetShiftID)
		if err != nil {
			return false, fmt.Errorf("failed to load target shift: %w", err)
		}

		requesterConflicts, err := s.CheckShiftConflicts(ctx, automation.CheckConflictsParams{
			EmployeeID:     req.RequesterID,
			WorkspaceID:    req.WorkspaceID,
			Date:           targetShift.Date,
			StartTime:      targetShift.StartTime,
			EndTime:        targetShift.EndTime,
			ExcludeShiftID: req.ShiftID,
		})
		if err != nil {
			return false, err
		}
		if len(requesterConflicts) > 0 {
			return false, nil
		}
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.ShiftRepository.ReassignEmployee(ctx, req.ShiftID, *req.TargetID); err != nil {
			return fmt.Errorf("failed to reassign shift: %w", err)
		}
		if req.IsTwoWay() {
			if err := s.ShiftRepository.ReassignEmployee(ctx, *req.TargetShiftID, req.RequesterID); err != nil {
				return fmt.Errorf("failed to reassign target shift: %w", err)
			}
		}
		if err := s.SwapRepository.Complete(ctx, swapID, noteAutoApprovedNoConflicts); err != nil {
			return fmt.Errorf("failed to complete swap: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return true, nil
}
