package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/zavodops/factory-backend-go/internal/domain/delivery"
	"github.com/zavodops/factory-backend-go/internal/pkg/database"
)

type deliveryRepository struct {
	db *database.DB
}

func NewDeliveryRepository(db *database.DB) delivery.Repository {
	return &deliveryRepository{db: db}
}

func (r *deliveryRepository) Create(ctx context.Context, item delivery.LineItem) (delivery.LineItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO delivery_items (id, product_id, quantity, date, groups)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, product_id, quantity, date, groups, created_at
	`

	var d delivery.LineItem
	err := q.QueryRow(ctx, query,
		item.ID, item.ProductID, item.Quantity, item.Date, item.Groups,
	).Scan(
		&d.ID, &d.ProductID, &d.Quantity, &d.Date, &d.Groups, &d.CreatedAt,
	)
	if err != nil {
		return delivery.LineItem{}, fmt.Errorf("failed to create delivery line item: %w", err)
	}

	return d, nil
}

func (r *deliveryRepository) ListByDate(ctx context.Context, date time.Time) ([]delivery.LineItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.product_id, d.quantity, d.date, d.groups, d.created_at, p.name, p.category
		FROM delivery_items d
		JOIN products p ON p.id = d.product_id
		WHERE d.date = $1
		ORDER BY d.created_at
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery line items: %w", err)
	}
	defer rows.Close()

	var items []delivery.LineItem
	for rows.Next() {
		var d delivery.LineItem
		if err := rows.Scan(&d.ID, &d.ProductID, &d.Quantity, &d.Date, &d.Groups, &d.CreatedAt, &d.ProductName, &d.ProductCategory); err != nil {
			return nil, fmt.Errorf("failed to scan delivery line item: %w", err)
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read delivery line items: %w", err)
	}

	return items, nil
}
