package salary

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zavodops/factory-backend-go/internal/pkg/validator"
)

// ========================================
// SALARY DTOs
// ========================================

type ProductionRequest struct {
	Date       string `json:"date"`
	Department string `json:"department"`
	// Cumulative counts for the day, as counted on the floor.
	ProducedCount int64 `json:"produced_count"`
	LoadedCount   int64 `json:"loaded_count"`
}

func (r *ProductionRequest) Validate() error {
	var errs validator.ValidationErrors

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
	if r.ProducedCount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "produced_count",
			Message: "produced_count must not be negative",
		})
	}
	if r.LoadedCount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "loaded_count",
			Message: "loaded_count must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefinementRequest struct {
	Date           string          `json:"date"`
	BitumQty       decimal.Decimal `json:"bitum_qty"`
	GranulaQty     decimal.Decimal `json:"granula_qty"`
	GranulaSoldQty decimal.Decimal `json:"granula_sold_qty"`
}

func (r *RefinementRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	for field, qty := range map[string]decimal.Decimal{
		"bitum_qty":        r.BitumQty,
		"granula_qty":      r.GranulaQty,
		"granula_sold_qty": r.GranulaSoldQty,
	} {
		if qty.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecalculateRequest struct {
	Date       string `json:"date"`
	Department string `json:"department"`
}

func (r *RecalculateRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerAmountResponse struct {
	EmployeeID    string          `json:"employee_id"`
	ShiftShare    decimal.Decimal `json:"shift_share"`
	Amount        decimal.Decimal `json:"amount"`
	LoadingAmount decimal.Decimal `json:"loading_amount"`
}

type RecordResponse struct {
	ID             string                 `json:"id"`
	Date           string                 `json:"date"`
	Department     string                 `json:"department"`
	ProducedCount  int64                  `json:"produced_count"`
	LoadedCount    int64                  `json:"loaded_count"`
	LoadedWeightKg decimal.Decimal        `json:"loaded_weight_kg"`
	BitumQty       decimal.Decimal        `json:"bitum_qty"`
	GranulaQty     decimal.Decimal        `json:"granula_qty"`
	GranulaSoldQty decimal.Decimal        `json:"granula_sold_qty"`
	TotalSum       decimal.Decimal        `json:"total_sum"`
	SalaryPerShare decimal.Decimal        `json:"salary_per_share"`
	Workers        []WorkerAmountResponse `json:"workers"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

func ToRecordResponse(record Record) RecordResponse {
	workers := make([]WorkerAmountResponse, 0, len(record.Workers))
	for _, w := range record.Workers {
		workers = append(workers, WorkerAmountResponse{
			EmployeeID:    w.EmployeeID,
			ShiftShare:    w.ShiftShare,
			Amount:        w.Amount,
			LoadingAmount: w.LoadingAmount,
		})
	}
	return RecordResponse{
		ID:             record.ID,
		Date:           record.Date.Format("2006-01-02"),
		Department:     record.Department.String(),
		ProducedCount:  record.ProducedCount,
		LoadedCount:    record.LoadedCount,
		LoadedWeightKg: record.LoadedWeightKg,
		BitumQty:       record.BitumQty,
		GranulaQty:     record.GranulaQty,
		GranulaSoldQty: record.GranulaSoldQty,
		TotalSum:       record.TotalSum,
		SalaryPerShare: record.SalaryPerShare,
		Workers:        workers,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}
