package attendance

import (
	"context"
	"time"
)

// Service defines business logic for attendance intake. Every mutation that
// touches a tracked department also recomputes the department's salary record
// for that day, inside the same transaction.
type Service interface {
	// Create stores a new entry and recomputes the affected salary record
	Create(ctx context.Context, req CreateRequest) (Response, error)

	// Update edits an entry; when the date or department moves, both the old
	// and the new (date, department) keys are recomputed
	Update(ctx context.Context, req UpdateRequest) (Response, error)

	// Delete removes an entry and recomputes the affected salary record
	Delete(ctx context.Context, id string) error

	// ListByDate returns all entries for a calendar day
	ListByDate(ctx context.Context, date time.Time) ([]Response, error)
}
