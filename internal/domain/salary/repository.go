package salary

import (
	"context"
	"time"

	"github.com/zavodops/factory-backend-go/internal/domain/department"
)

// Repository is the ledger writer/reader for department salary records.
type Repository interface {
	// GetByDateAndDepartment retrieves the record for its unique key.
	// Returns ErrRecordNotFound when no recomputation has run yet.
	GetByDateAndDepartment(ctx context.Context, date time.Time, dept department.Department) (Record, error)

	// Upsert creates or fully replaces the record for (date, department).
	// All derived fields are overwritten; this is what keeps repeated
	// recomputation idempotent.
	Upsert(ctx context.Context, record Record) (Record, error)

	// ListByDateRange retrieves records within [from, to], optionally
	// filtered by department, for downstream payroll reporting.
	ListByDateRange(ctx context.Context, from, to time.Time, dept *department.Department) ([]Record, error)
}
