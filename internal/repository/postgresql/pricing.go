package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zavodops/factory-backend-go/internal/domain/pricing"
	"github.com/zavodops/factory-backend-go/internal/pkg/database"
)

type pricingRepository struct {
	db *database.DB
}

func NewPricingRepository(db *database.DB) pricing.Repository {
	return &pricingRepository{db: db}
}

func (r *pricingRepository) ListByCategories(ctx context.Context, categories []pricing.Category) ([]pricing.UnitPrice, error) {
	q := GetQuerier(ctx, r.db)

	cats := make([]string, 0, len(categories))
	for _, c := range categories {
		cats = append(cats, string(c))
	}

	query := `
		SELECT id, category, product_name, production_cost, loading_cost, created_at, updated_at
		FROM unit_prices
		WHERE category = ANY($1)
	`

	rows, err := q.Query(ctx, query, cats)
	if err != nil {
		return nil, fmt.Errorf("failed to list unit prices: %w", err)
	}
	defer rows.Close()

	var prices []pricing.UnitPrice
	for rows.Next() {
		var p pricing.UnitPrice
		if err := rows.Scan(&p.ID, &p.Category, &p.ProductName, &p.ProductionCost, &p.LoadingCost, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan unit price: %w", err)
		}
		prices = append(prices, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read unit prices: %w", err)
	}

	return prices, nil
}

func (r *pricingRepository) GetProductByID(ctx context.Context, id string) (pricing.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, category, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var p pricing.Product
	err := q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Category, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return pricing.Product{}, pricing.ErrProductNotFound
		}
		return pricing.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return p, nil
}
