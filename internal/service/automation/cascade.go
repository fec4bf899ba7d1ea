package automation

import (
	"context"
	"fmt"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/automation"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/notification"
)

// CascadeAbsenceApproval implements automation.AutomationService.
//
// The bulk status update runs before the notification so a reader never
// observes the cancelled count without the shifts being CANCELLED. Retrying
// with the same absence is safe: cancelled shifts are excluded from the
// next find.
func (s *AutomationServiceImpl) CascadeAbsenceApproval(ctx context.Context, p automation.CascadeParams) (automation.CascadeResult, error) {
	conflicting, err := s.ShiftRepository.FindActiveInRange(ctx, p.EmployeeID, p.WorkspaceID, dateOnly(p.StartDate), dateOnly(p.EndDate))
	if err != nil {
		return automation.CascadeResult{}, fmt.Errorf("failed to find shifts in absence window: %w", err)
	}

	if len(conflicting) == 0 {
		return automation.CascadeResult{CancelledShifts: 0}, nil
	}

	ids := make([]string, len(conflicting))
	for i, sh := range conflicting {
		ids[i] = sh.ID
	}

	cancelled, err := s.ShiftRepository.CancelByIDs(ctx, ids)
	if err != nil {
		return automation.CascadeResult{}, fmt.Errorf("failed to cancel shifts: %w", err)
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, p.EmployeeID)
	if err != nil {
		return automation.CascadeResult{}, fmt.Errorf("failed to load employee: %w", err)
	}

	link := "/schichtplan"
	err = s.notificationSvc.CreateSystemNotification(ctx, notification.CreateSystemNotificationRequest{
		Type:          notification.TypeShiftsCancelledAbsence,
		Title:         "Schichten abgesagt wegen Abwesenheit",
		Message:       fmt.Sprintf("%d Schicht(en) von %s wurden wegen genehmigter Abwesenheit abgesagt und benötigen Vertretung.", len(conflicting), emp.Name()),
		Link:          &link,
		WorkspaceID:   p.WorkspaceID,
		RecipientType: notification.RecipientManagers,
	})
	if err != nil {
		return automation.CascadeResult{}, fmt.Errorf("failed to notify managers: %w", err)
	}

	return automation.CascadeResult{CancelledShifts: cancelled}, nil
}
