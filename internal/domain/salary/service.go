package salary

import (
	"context"
	"time"

	"github.com/zavodops/factory-backend-go/internal/domain/delivery"
	"github.com/zavodops/factory-backend-go/internal/domain/department"
)

// Service is the recalculation engine. The Record* methods run in their own
// transaction; Recalculate and ApplyLineItem expect the caller's transaction
// on the context so the triggering mutation and the recomputation commit or
// abort together.
type Service interface {
	// RecordProduction is the piece-production trigger: the caller supplies
	// the day's cumulative produced and loaded counts.
	RecordProduction(ctx context.Context, req ProductionRequest) (*RecordResponse, error)

	// RecordRefinement is the multi-category trigger for the okisleniya
	// refinement outputs.
	RecordRefinement(ctx context.Context, req RefinementRequest) (*RecordResponse, error)

	// RecalculateDepartmentDay is the generic global trigger: the pool is
	// re-derived from already-persisted quantities and the day's delivery
	// rows, then redistributed over the current attendance snapshot.
	RecalculateDepartmentDay(ctx context.Context, req RecalculateRequest) (*RecordResponse, error)

	// ListRecords returns records within [from, to], optionally filtered.
	ListRecords(ctx context.Context, from, to time.Time, dept *department.Department) ([]RecordResponse, error)

	// Recalculate runs the full recomputation for one (date, department)
	// key inside the caller's transaction. A nil record with nil error is
	// the zero-attendance no-op.
	Recalculate(ctx context.Context, date time.Time, dept department.Department) (*Record, error)

	// ApplyLineItem recomputes every tracked department named in the line
	// item's groups, inside the caller's transaction.
	ApplyLineItem(ctx context.Context, item delivery.LineItem) error
}
