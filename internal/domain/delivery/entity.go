package delivery

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one delivered/loaded consignment. Rows are immutable events:
// the salary engine re-derives a day's loading pool by summing the day's
// items, never by patching a running total.
type LineItem struct {
	ID        string
	ProductID string
	Quantity  decimal.Decimal
	Date      time.Time
	// Groups holds the free-text department labels the consignment was
	// loaded by. One item may be split across several departments.
	Groups    []string
	CreatedAt time.Time

	// Joined fields
	ProductName     *string
	ProductCategory *string
}
