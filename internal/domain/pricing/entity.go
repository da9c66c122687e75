package pricing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zavodops/factory-backend-go/internal/domain/department"
)

// Category identifies a priced unit of work. Each production department has a
// category of its own; the okisleniya refinement sub-products carry separate
// categories because their unit costs differ from the base department rate.
type Category string

const (
	CategoryPolizol    Category = "polizol"
	CategoryRuberoid   Category = "ruberoid"
	CategoryOkisleniya Category = "okisleniya"
	CategoryPergamin   Category = "pergamin"
	CategoryBikrost    Category = "bikrost"

	// Refinement sub-products of the okisleniya unit.
	CategoryBitum       Category = "bitum"
	CategoryGranula     Category = "granula"
	CategoryGranulaSale Category = "granula_sale"
)

// CategoryFor returns the base price category of a department.
func CategoryFor(dept department.Department) Category {
	return Category(dept)
}

// UnitPrice is one row of the price catalog. ProductName narrows the row to a
// single product within the category; rows without a product name price the
// whole category.
type UnitPrice struct {
	ID             string
	Category       Category
	ProductName    *string
	ProductionCost decimal.Decimal
	LoadingCost    decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Product is a sellable item; deliveries reference products, and the product's
// category selects its price row.
type Product struct {
	ID        string
	Name      string
	Category  Category
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Price is the resolved cost pair for one unit.
type Price struct {
	ProductionCost decimal.Decimal
	LoadingCost    decimal.Decimal
}
