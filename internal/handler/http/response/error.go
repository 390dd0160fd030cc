package response

import (
	"errors"
	"net/http"

	"github.com/clinika/kiosk-backend-go/internal/domain/admin"
	"github.com/clinika/kiosk-backend-go/internal/domain/attendance"
	"github.com/clinika/kiosk-backend-go/internal/domain/employee"
	"github.com/clinika/kiosk-backend-go/internal/domain/holiday"
	"github.com/clinika/kiosk-backend-go/internal/pkg/validator"
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
	// Admin domain errors
	case errors.Is(err, admin.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, admin.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrPasswordLength):
		PolicyViolation(w, "Password must be 6-12 characters")
	case errors.Is(err, employee.ErrPasswordIsDefault):
		PolicyViolation(w, "Password must differ from the default credential")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoPendingRecord):
		Conflict(w, "No pending clock-in to commit")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrDateExists):
		Conflict(w, "A holiday is already registered for that date")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
