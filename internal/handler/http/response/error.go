package response

import (
	"errors"
	"net/http"

	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/absence"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/auth"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/automation"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/employee"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/shift"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/swap"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/timeaccount"
	"github.com/schichtwerk/schichtplan-backend-go/internal/domain/user"
	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Scheduling domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence request not found")
	case errors.Is(err, swap.ErrSwapNotFound):
		NotFound(w, "Swap request not found")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, timeaccount.ErrAccountNotFound):
		NotFound(w, "Time account not found")

	// Automation domain errors
	case errors.Is(err, automation.ErrInvalidRepeatWeeks):
		BadRequest(w, "repeat_weeks must be between 1 and 52", nil)
	case errors.Is(err, automation.ErrInvalidMonth):
		BadRequest(w, "month must be between 1 and 12", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
