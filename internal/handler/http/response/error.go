package response

import (
	"errors"
	"net/http"

	"github.com/oredipendenti/backend-go/internal/domain/auth"
	"github.com/oredipendenti/backend-go/internal/domain/employee"
	"github.com/oredipendenti/backend-go/internal/domain/product"
	"github.com/oredipendenti/backend-go/internal/domain/rating"
	"github.com/oredipendenti/backend-go/internal/domain/timesheet"
	"github.com/oredipendenti/backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, auth.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNameExists):
		Conflict(w, "Employee name already taken")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrInvalidDate):
		BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
	case errors.Is(err, timesheet.ErrInvalidMonth):
		BadRequest(w, "Invalid month, expected YYYY-MM", nil)
	case errors.Is(err, timesheet.ErrDayNotFound):
		NotFound(w, "Day entry not found")
	case errors.Is(err, timesheet.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Product domain errors
	case errors.Is(err, product.ErrProductNotFound):
		NotFound(w, "Product not found")
	case errors.Is(err, product.ErrProductExists):
		Conflict(w, "Product id already taken")
	case errors.Is(err, product.ErrInvalidSlug):
		BadRequest(w, "Product id may only contain a-z, 0-9, - and _", nil)

	// Rating domain errors
	case errors.Is(err, rating.ErrRatingNotFound):
		NotFound(w, "Rating not found")
	case errors.Is(err, rating.ErrUnknownProduct):
		NotFound(w, "Product not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
