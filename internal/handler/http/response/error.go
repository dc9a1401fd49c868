package response

import (
	"errors"
	"net/http"

	"github.com/madrasahq/school-hr-backend/internal/domain/absence"
	"github.com/madrasahq/school-hr-backend/internal/domain/auth"
	"github.com/madrasahq/school-hr-backend/internal/domain/employee"
	"github.com/madrasahq/school-hr-backend/internal/domain/settings"
	"github.com/madrasahq/school-hr-backend/internal/domain/user"
	"github.com/madrasahq/school-hr-backend/internal/pkg/validator"
	"github.com/madrasahq/school-hr-backend/internal/pkg/workcal"
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
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound), errors.Is(err, absence.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNationalIDExists):
		Conflict(w, "National ID already registered")

	// Absence domain errors
	case errors.Is(err, absence.ErrRecordNotFound):
		NotFound(w, "Absence record not found")
	case errors.Is(err, absence.ErrInvalidRecord):
		BadRequest(w, err.Error(), nil)

	// Report domain errors
	case errors.Is(err, workcal.ErrInvalidRange):
		BadRequest(w, "Start date must not be after end date", nil)

	// Settings domain errors
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "School settings not configured")
	case errors.Is(err, settings.ErrInvalidBackup):
		BadRequest(w, "Backup workbook is missing required sheets", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
