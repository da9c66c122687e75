package delivery

import (
	"context"
	"time"
)

// Repository defines data access for delivery line items.
type Repository interface {
	// Create stores a new line item
	Create(ctx context.Context, item LineItem) (LineItem, error)

	// ListByDate retrieves every line item dated within the calendar day,
	// with product names joined in
	ListByDate(ctx context.Context, date time.Time) ([]LineItem, error)
}
