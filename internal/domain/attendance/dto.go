package attendance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zavodops/factory-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CreateRequest struct {
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"`
	Department string          `json:"department"`
	ShiftShare decimal.Decimal `json:"shift_share"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if !IsAllowedShiftShare(r.ShiftShare) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_share",
			Message: "shift_share must be one of 0.33, 0.5, 0.75, 1, 1.5, 2",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRequest struct {
	ID         string           `json:"-"`
	Date       *string          `json:"date"`
	Department *string          `json:"department"`
	ShiftShare *decimal.Decimal `json:"shift_share"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must not be empty",
		})
	}

	if r.ShiftShare != nil && !IsAllowedShiftShare(*r.ShiftShare) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_share",
			Message: "shift_share must be one of 0.33, 0.5, 0.75, 1, 1.5, 2",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	Date         string          `json:"date"`
	Department   string          `json:"department"`
	ShiftShare   decimal.Decimal `json:"shift_share"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func ToResponse(entry Attendance) Response {
	return Response{
		ID:           entry.ID,
		EmployeeID:   entry.EmployeeID,
		EmployeeName: entry.EmployeeName,
		Date:         entry.Date.Format("2006-01-02"),
		Department:   entry.Department,
		ShiftShare:   entry.ShiftShare,
		CreatedAt:    entry.CreatedAt,
		UpdatedAt:    entry.UpdatedAt,
	}
}
