package delivery

import (
	"context"
	"time"
)

// Service records delivery line items. Recording a line item and
// recomputing the loading salaries of its target departments happen in one
// transaction.
type Service interface {
	Record(ctx context.Context, req RecordRequest) (Response, error)
	ListByDate(ctx context.Context, date time.Time) ([]Response, error)
}
