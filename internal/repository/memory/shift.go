package memory

import (
	"context"
	"sync"
	"time"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/shift"
	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/timeutil"
)

type ShiftRepository struct {
	mu     sync.RWMutex
	shifts map[string]shift.Shift
}

func NewShiftRepository() *ShiftRepository {
	return &ShiftRepository{shifts: make(map[string]shift.Shift)}
}

// Seed stores a shift, assigning an ID when missing, and returns it.
func (r *ShiftRepository) Seed(s shift.Shift) shift.Shift {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == "" {
		s.ID = newID()
	}
	if s.Status == "" {
		s.Status = shift.StatusScheduled
	}
	r.shifts[s.ID] = s
	return s
}

func (r *ShiftRepository) GetByID(_ context.Context, id string) (*shift.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.shifts[id]
	if !ok {
		return nil, shift.ErrShiftNotFound
	}
	return &s, nil
}

func (r *ShiftRepository) FindActiveByDate(_ context.Context, employeeID, workspaceID string, date time.Time, excludeShiftID string) ([]shift.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []shift.Shift
	for _, s := range r.shifts {
		if s.EmployeeID == employeeID && s.WorkspaceID == workspaceID &&
			s.Status != shift.StatusCancelled && sameDay(s.Date, date) &&
			(excludeShiftID == "" || s.ID != excludeShiftID) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *ShiftRepository) FindActiveInRange(_ context.Context, employeeID, workspaceID string, from, to time.Time) ([]shift.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []shift.Shift
	for _, s := range r.shifts {
		if s.EmployeeID == employeeID && s.WorkspaceID == workspaceID &&
			s.Status != shift.StatusCancelled && dayInRange(s.Date, from, to) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *ShiftRepository) LatestEndingOnDate(ctx context.Context, employeeID, workspaceID string, date time.Time) (*shift.Shift, error) {
	shifts, _ := r.FindActiveByDate(ctx, employeeID, workspaceID, date, "")
	var best *shift.Shift
	for i := range shifts {
		s := shifts[i]
		if best == nil || timeutil.ToMinutes(s.EndTime) > timeutil.ToMinutes(best.EndTime) {
			best = &s
		}
	}
	return best, nil
}

func (r *ShiftRepository) EarliestStartingOnDate(ctx context.Context, employeeID, workspaceID string, date time.Time) (*shift.Shift, error) {
	shifts, _ := r.FindActiveByDate(ctx, employeeID, workspaceID, date, "")
	var best *shift.Shift
	for i := range shifts {
		s := shifts[i]
		if best == nil || timeutil.ToMinutes(s.StartTime) < timeutil.ToMinutes(best.StartTime) {
			best = &s
		}
	}
	return best, nil
}

func (r *ShiftRepository) FindUnprocessedBefore(_ context.Context, workspaceID string, before time.Time) ([]shift.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []shift.Shift
	for _, s := range r.shifts {
		if s.WorkspaceID != workspaceID || !truncateDay(s.Date).Before(truncateDay(before)) {
			continue
		}
		switch s.Status {
		case shift.StatusScheduled, shift.StatusConfirmed, shift.StatusCompleted:
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *ShiftRepository) Create(_ context.Context, newShift *shift.Shift) (*shift.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	newShift.ID = newID()
	now := time.Now()
	newShift.CreatedAt = now
	newShift.UpdatedAt = now
	r.shifts[newShift.ID] = *newShift
	return newShift, nil
}

func (r *ShiftRepository) CancelByIDs(_ context.Context, ids []string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cancelled := 0
	for _, id := range ids {
		s, ok := r.shifts[id]
		if !ok || s.Status == shift.StatusCancelled {
			continue
		}
		s.Status = shift.StatusCancelled
		s.UpdatedAt = time.Now()
		r.shifts[id] = s
		cancelled++
	}
	return cancelled, nil
}

func (r *ShiftRepository) ReassignEmployee(_ context.Context, shiftID, employeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shifts[shiftID]
	if !ok {
		return shift.ErrShiftNotFound
	}
	s.EmployeeID = employeeID
	s.UpdatedAt = time.Now()
	r.shifts[shiftID] = s
	return nil
}

func (r *ShiftRepository) UpdateStatus(_ context.Context, shiftID string, status shift.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shifts[shiftID]
	if !ok {
		return shift.ErrShiftNotFound
	}
	s.Status = status
	s.UpdatedAt = time.Now()
	r.shifts[shiftID] = s
	return nil
}
