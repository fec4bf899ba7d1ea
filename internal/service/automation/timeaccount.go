package automation

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/timeaccount"
)

// RecalculateTimeAccount implements automation.AutomationService.
//
// The balance is fully re-derived on every call rather than adjusted
// incrementally, so a corrected or late-confirmed entry heals itself on the
// next recalculation. An employee without an account is not an error.
func (s *AutomationServiceImpl) RecalculateTimeAccount(ctx context.Context, employeeID string) (*timeaccount.TimeAccount, error) {
	account, err := s.TimeAccountRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, timeaccount.ErrAccountNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load time account: %w", err)
	}

	worked, err := s.TimeEntryRepository.SumConfirmedNetMinutesSince(ctx, employeeID, dateOnly(account.PeriodStart))
	if err != nil {
		return nil, fmt.Errorf("failed to sum confirmed minutes: %w", err)
	}

	now := s.now()

	// A started week counts in full, and the first week counts from day one.
	elapsed := now.Sub(account.PeriodStart)
	weeks := int(math.Ceil(elapsed.Hours() / (7 * 24)))
	if weeks < 1 {
		weeks = 1
	}

	expected := int(math.Round(float64(weeks) * account.ContractHours * 60))
	balance := account.CarryoverMinutes + worked - expected

	if err := s.TimeAccountRepository.UpdateBalance(ctx, employeeID, balance, now); err != nil {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}

	account.CurrentBalance = balance
	account.LastCalculated = now
	return account, nil
}
