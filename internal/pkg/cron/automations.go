package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/automation"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/workspace"
)

// lockGraceDays mirrors the payroll correction window: the previous month is
// locked once five days of the current month have passed.
const lockGraceDays = 5

// AutomationJobs wires the workspace-scoped automation sweeps into the
// scheduler.
type AutomationJobs struct {
	automationService automation.AutomationService
	workspaceRepo     workspace.WorkspaceRepository
}

func NewAutomationJobs(automationService automation.AutomationService, workspaceRepo workspace.WorkspaceRepository) *AutomationJobs {
	return &AutomationJobs{
		automationService: automationService,
		workspaceRepo:     workspaceRepo,
	}
}

// Register adds the sweep job to the scheduler.
func (j *AutomationJobs) Register(s *Scheduler, interval time.Duration) {
	s.AddJob("automation-sweep", interval, j.RunSweep)
}

// RunSweep runs the daily automations for every workspace. A failing
// workspace is logged and skipped so one tenant cannot stall the rest.
func (j *AutomationJobs) RunSweep(ctx context.Context) error {
	workspaceIDs, err := j.workspaceRepo.FindAllIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list workspaces: %w", err)
	}

	for _, workspaceID := range workspaceIDs {
		j.sweepWorkspace(ctx, workspaceID)
	}
	return nil
}

func (j *AutomationJobs) sweepWorkspace(ctx context.Context, workspaceID string) {
	generated, err := j.automationService.GenerateTimeEntries(ctx, workspaceID)
	if err != nil {
		slog.Error("Time entry generation failed", "workspace_id", workspaceID, "error", err)
	} else if generated.Created > 0 {
		slog.Info("Time entries generated", "workspace_id", workspaceID, "created", generated.Created)
	}

	overtime, err := j.automationService.CheckOvertimeAlerts(ctx, workspaceID)
	if err != nil {
		slog.Error("Overtime check failed", "workspace_id", workspaceID, "error", err)
	} else if len(overtime.Alerts) > 0 {
		slog.Info("Overtime alerts raised", "workspace_id", workspaceID, "count", len(overtime.Alerts))
	}

	// The previous month is locked once its grace period has passed.
	now := time.Now()
	if now.Day() > lockGraceDays {
		prev := now.AddDate(0, 0, -now.Day())
		locked, err := j.automationService.LockMonthTimeEntries(ctx, workspaceID, prev.Year(), int(prev.Month()))
		if err != nil {
			slog.Error("Payroll month-lock failed", "workspace_id", workspaceID, "error", err)
		} else if locked.Locked > 0 {
			slog.Info("Payroll month locked", "workspace_id", workspaceID, "month", locked.Month, "locked", locked.Locked)
		}
	}
}
