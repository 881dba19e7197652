package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/client"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrEmailAlreadyExists), errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Role errors
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrSelectionRequired):
		ErrorWithCode(w, http.StatusBadRequest, "SELECTION_REQUIRED", "Please select both client and employee")
	case errors.Is(err, attendance.ErrInvalidSelection):
		ErrorWithCode(w, http.StatusBadRequest, "INVALID_SELECTION", "Invalid client or employee selection")
	case errors.Is(err, attendance.ErrNothingToUpdate):
		BadRequest(w, "No updatable fields provided", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Client domain errors
	case errors.Is(err, client.ErrClientNotFound):
		BadRequest(w, "Client not found", map[string]string{"client_id": "client_id must reference an existing client"})

	// Report errors
	case errors.Is(err, report.ErrReportGeneration):
		InternalServerError(w, "Failed to generate report")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
