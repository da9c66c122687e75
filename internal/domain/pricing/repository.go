package pricing

import "context"

// Repository defines read access to the price catalog and the product list.
// The catalog is owned by the commercial side; this engine only reads it.
type Repository interface {
	// ListByCategories fetches every price row whose category is in the set.
	// One batch query per recomputation, never one lookup per item.
	ListByCategories(ctx context.Context, categories []Category) ([]UnitPrice, error)

	// GetProductByID resolves a delivery's product reference.
	GetProductByID(ctx context.Context, id string) (Product, error)
}
