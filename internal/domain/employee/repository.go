package employee

import "context"

// Repository defines read access to the employee registry. Employee lifecycle
// is managed by the HR side; the engine only resolves references.
type Repository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, activeOnly bool) ([]Employee, error)
}
