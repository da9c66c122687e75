package attendance

import (
	"context"
	"time"
)

// Repository defines data access methods for attendance entries.
type Repository interface {
	// Create creates a new attendance entry
	Create(ctx context.Context, entry Attendance) (Attendance, error)

	// GetByID retrieves an entry by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// Update updates an existing entry
	Update(ctx context.Context, entry Attendance) error

	// Delete removes an entry
	Delete(ctx context.Context, id string) error

	// ListByDate retrieves every entry for a calendar day, all departments.
	// The salary engine groups the result by normalized department itself.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
}
