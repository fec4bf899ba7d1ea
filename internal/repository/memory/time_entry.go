package memory

import (
	"context"
	"sync"
	"time"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/timeentry"
)

type TimeEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]timeentry.TimeEntry
}

func NewTimeEntryRepository() *TimeEntryRepository {
	return &TimeEntryRepository{entries: make(map[string]timeentry.TimeEntry)}
}

// Seed stores a time entry, assigning an ID when missing.
func (r *TimeEntryRepository) Seed(e timeentry.TimeEntry) timeentry.TimeEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == "" {
		e.ID = newID()
	}
	r.entries[e.ID] = e
	return e
}

// All returns a copy of every stored entry, for test assertions.
func (r *TimeEntryRepository) All() []timeentry.TimeEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]timeentry.TimeEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	return out
}

func (r *TimeEntryRepository) Create(_ context.Context, e *timeentry.TimeEntry) (*timeentry.TimeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = newID()
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	r.entries[e.ID] = *e
	return e, nil
}

func (r *TimeEntryRepository) ExistsForShift(_ context.Context, shiftID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.ShiftID != nil && *e.ShiftID == shiftID {
			return true, nil
		}
	}
	return false, nil
}

func (r *TimeEntryRepository) ExistsDuplicate(_ context.Context, employeeID string, date time.Time, startTime, endTime string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.EmployeeID == employeeID && sameDay(e.Date, date) &&
			e.StartTime == startTime && e.EndTime == endTime &&
			e.Status != timeentry.StatusZurueckgewiesen {
			return true, nil
		}
	}
	return false, nil
}

func (r *TimeEntryRepository) SumNetMinutes(_ context.Context, employeeID string, from, to time.Time, statuses []timeentry.Status) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, e := range r.entries {
		if e.EmployeeID != employeeID || !dayInRange(e.Date, from, to) {
			continue
		}
		for _, s := range statuses {
			if e.Status == s {
				total += e.NetMinutes
				break
			}
		}
	}
	return total, nil
}

func (r *TimeEntryRepository) SumConfirmedNetMinutesSince(_ context.Context, employeeID string, from time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, e := range r.entries {
		if e.EmployeeID == employeeID && e.Status == timeentry.StatusBestaetigt &&
			!truncateDay(e.Date).Before(truncateDay(from)) {
			total += e.NetMinutes
		}
	}
	return total, nil
}

func (r *TimeEntryRepository) ConfirmReviewedInRange(_ context.Context, workspaceID string, from, to time.Time, confirmedBy string, confirmedAt time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	locked := 0
	for id, e := range r.entries {
		if e.WorkspaceID != workspaceID || e.Status != timeentry.StatusGeprueft || !dayInRange(e.Date, from, to) {
			continue
		}
		e.Status = timeentry.StatusBestaetigt
		e.ConfirmedAt = &confirmedAt
		e.ConfirmedBy = &confirmedBy
		e.UpdatedAt = time.Now()
		r.entries[id] = e
		locked++
	}
	return locked, nil
}
