package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/auth"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/automation"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/timeaccount"
	"github.com/schichtwerk/schichtplan-backend-go/internal/handler/http/response"
)

type AutomationHandler interface {
	CheckConflicts(w http.ResponseWriter, r *http.Request)
	RecurringShifts(w http.ResponseWriter, r *http.Request)
	GenerateTimeEntries(w http.ResponseWriter, r *http.Request)
	OvertimeCheck(w http.ResponseWriter, r *http.Request)
	PayrollLock(w http.ResponseWriter, r *http.Request)
	AutoApproveAbsence(w http.ResponseWriter, r *http.Request)
	AutoApproveSwap(w http.ResponseWriter, r *http.Request)
	RecalculateTimeAccount(w http.ResponseWriter, r *http.Request)
}

type automationHandlerImpl struct {
	automationService automation.AutomationService
}

func NewAutomationHandler(automationService automation.AutomationService) AutomationHandler {
	return &automationHandlerImpl{
		automationService: automationService,
	}
}

// workspaceFromClaims pulls the workspace scope out of the access token.
func workspaceFromClaims(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	workspaceID, ok := claims["workspace_id"].(string)
	if !ok || workspaceID == "" {
		return "", auth.ErrInvalidToken
	}
	return workspaceID, nil
}

// CheckConflicts implements AutomationHandler.
func (h *automationHandlerImpl) CheckConflicts(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := workspaceFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req automation.CheckConflictsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	conflicts, err := h.automationService.CheckShiftConflicts(r.Context(), automation.CheckConflictsParams{
		EmployeeID:     req.EmployeeID,
		WorkspaceID:    workspaceID,
		Date:           date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		ExcludeShiftID: req.ExcludeShiftID,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"conflicts": conflicts})
}

// RecurringShifts implements AutomationHandler.
func (h *automationHandlerImpl) RecurringShifts(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := workspaceFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req automation.RecurringShiftsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	result, err := h.automationService.CreateRecurringShifts(r.Context(), automation.RecurringParams{
		BaseShift: automation.BaseShift{
			EmployeeID: req.EmployeeID,
			Date:       date,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			LocationID: req.LocationID,
			Notes:      req.Notes,
		},
		RepeatWeeks: req.RepeatWeeks,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GenerateTimeEntries implements AutomationHandler.
func (h *automationHandlerImpl) GenerateTimeEntries(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := workspaceFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.automationService.GenerateTimeEntries(r.Context(), workspaceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// OvertimeCheck implements AutomationHandler.
func (h *automationHandlerImpl) OvertimeCheck(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := workspaceFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.automationService.CheckOvertimeAlerts(r.Context(), workspaceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PayrollLock implements AutomationHandler.
func (h *automationHandlerImpl) PayrollLock(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := workspaceFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	req := automation.PayrollLockRequest{Year: year, Month: month}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.automationService.LockMonthTimeEntries(r.Context(), workspaceID, req.Year, req.Month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AutoApproveAbsence implements AutomationHandler.
func (h *automationHandlerImpl) AutoApproveAbsence(w http.ResponseWriter, r *http.Request) {
	absenceID := chi.URLParam(r, "id")
	if absenceID == "" {
		response.BadRequest(w, "Absence ID is required", nil)
		return
	}

	approved, err := h.automationService.TryAutoApproveAbsence(r.Context(), absenceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"approved": approved})
}

// RecalculateTimeAccount implements AutomationHandler.
func (h *automationHandlerImpl) RecalculateTimeAccount(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	account, err := h.automationService.RecalculateTimeAccount(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if account == nil {
		response.HandleError(w, timeaccount.ErrAccountNotFound)
		return
	}

	response.Success(w, automation.TimeAccountResult{
		EmployeeID:     account.EmployeeID,
		BalanceMinutes: account.CurrentBalance,
		LastCalculated: account.LastCalculated,
	})
}

// AutoApproveSwap implements AutomationHandler.
func (h *automationHandlerImpl) AutoApproveSwap(w http.ResponseWriter, r *http.Request) {
	swapID := chi.URLParam(r, "id")
	if swapID == "" {
		response.BadRequest(w, "Swap ID is required", nil)
		return
	}

	approved, err := h.automationService.TryAutoApproveSwap(r.Context(), swapID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"approved": approved})
}
