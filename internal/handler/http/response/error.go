package response

import (
	"errors"
	"net/http"

	"github.com/zavodops/factory-backend-go/internal/domain/attendance"
	"github.com/zavodops/factory-backend-go/internal/domain/auth"
	"github.com/zavodops/factory-backend-go/internal/domain/delivery"
	"github.com/zavodops/factory-backend-go/internal/domain/employee"
	"github.com/zavodops/factory-backend-go/internal/domain/pricing"
	"github.com/zavodops/factory-backend-go/internal/domain/salary"
	"github.com/zavodops/factory-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid login or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance entry not found")
	case errors.Is(err, attendance.ErrDuplicateEntry):
		Conflict(w, "Attendance entry already exists for this employee, date and department")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Pricing domain errors
	case errors.Is(err, pricing.ErrProductNotFound):
		NotFound(w, "Product not found")

	// Delivery domain errors
	case errors.Is(err, delivery.ErrLineItemNotFound):
		NotFound(w, "Delivery line item not found")

	// Salary domain errors
	case errors.Is(err, salary.ErrUnknownDepartment):
		BadRequest(w, "Department is not tracked by the salary engine", nil)
	case errors.Is(err, salary.ErrNegativeDistributable):
		UnprocessableEntity(w, "Distributable pool is negative after bonus carve-out")
	case errors.Is(err, salary.ErrRecordNotFound):
		NotFound(w, "Salary record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
