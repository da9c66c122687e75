package salary

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zavodops/factory-backend-go/internal/domain/department"
)

// WorkerAmount is one worker's slice of a department-day record. Amount is
// the production share, LoadingAmount the share of the day's delivery events.
type WorkerAmount struct {
	EmployeeID    string          `json:"employee_id"`
	ShiftShare    decimal.Decimal `json:"shift_share"`
	Amount        decimal.Decimal `json:"amount"`
	LoadingAmount decimal.Decimal `json:"loading_amount"`
}

// Record is the derived salary aggregate for one (date, department) key.
// Every recomputation rebuilds all quantity and worker fields from scratch;
// the record is never patched incrementally.
type Record struct {
	ID         string
	Date       time.Time
	Department department.Department

	ProducedCount  int64
	LoadedCount    int64
	LoadedWeightKg decimal.Decimal

	// Refinement sub-quantities (okisleniya only in practice, stored
	// uniformly so the generic recompute stays department-agnostic).
	BitumQty       decimal.Decimal
	GranulaQty     decimal.Decimal
	GranulaSoldQty decimal.Decimal

	TotalSum       decimal.Decimal
	SalaryPerShare decimal.Decimal
	Workers        []WorkerAmount

	CreatedAt time.Time
	UpdatedAt time.Time
}
