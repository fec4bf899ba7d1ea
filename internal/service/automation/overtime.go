package automation

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/automation"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/notification"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/timeentry"
)

// overtimeStatuses are the entry states that count toward the weekly sweep.
// Drafts and rejected entries are excluded on purpose.
var overtimeStatuses = []timeentry.Status{
	timeentry.StatusEingereicht,
	timeentry.StatusGeprueft,
	timeentry.StatusBestaetigt,
}

// CheckOvertimeAlerts implements automation.AutomationService.
//
// One sweep covers the current Monday-start week of the whole workspace and
// produces at most one manager notification, no matter how many employees
// are over their contracted hours.
func (s *AutomationServiceImpl) CheckOvertimeAlerts(ctx context.Context, workspaceID string) (automation.OvertimeResult, error) {
	weekStart := startOfWeek(dateOnly(s.now()))
	weekEnd := weekStart.AddDate(0, 0, 6)

	accounts, err := s.TimeAccountRepository.FindByWorkspace(ctx, workspaceID)
	if err != nil {
		return automation.OvertimeResult{}, fmt.Errorf("failed to load time accounts: %w", err)
	}

	alerts := []string{}
	for _, account := range accounts {
		worked, err := s.TimeEntryRepository.SumNetMinutes(ctx, account.EmployeeID, weekStart, weekEnd, overtimeStatuses)
		if err != nil {
			return automation.OvertimeResult{}, fmt.Errorf("failed to sum weekly minutes: %w", err)
		}

		threshold := int(math.Round(account.ContractHours * 60))
		if worked <= threshold {
			continue
		}

		emp, err := s.EmployeeRepository.GetByID(ctx, account.EmployeeID)
		if err != nil {
			return automation.OvertimeResult{}, fmt.Errorf("failed to load employee: %w", err)
		}

		alerts = append(alerts, fmt.Sprintf("%s: %.1fh Überstunden", emp.Name(), float64(worked-threshold)/60))
	}

	if len(alerts) == 0 {
		return automation.OvertimeResult{Alerts: alerts}, nil
	}

	link := "/zeitkonten"
	err = s.notificationSvc.CreateSystemNotification(ctx, notification.CreateSystemNotificationRequest{
		Type:          notification.TypeOvertimeAlert,
		Title:         fmt.Sprintf("Überstunden-Warnung (%d Mitarbeiter)", len(alerts)),
		Message:       strings.Join(alerts, "; "),
		Link:          &link,
		WorkspaceID:   workspaceID,
		RecipientType: notification.RecipientManagers,
	})
	if err != nil {
		return automation.OvertimeResult{}, fmt.Errorf("failed to notify managers: %w", err)
	}

	return automation.OvertimeResult{Alerts: alerts}, nil
}

// startOfWeek returns the Monday of the week containing t.
func startOfWeek(t time.Time) time.Time {
	offset := 1 - int(t.Weekday())
	if t.Weekday() == time.Sunday {
		offset = -6
	}
	return t.AddDate(0, 0, offset)
}
