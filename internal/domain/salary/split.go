package salary

import (
	"github.com/shopspring/decimal"
	"github.com/zavodops/factory-backend-go/internal/domain/department"
)

// Portion is one department's cut of a delivery line item.
type Portion struct {
	Value    decimal.Decimal
	Quantity decimal.Decimal
}

// SplitByWeight divides a line item's monetary value and quantity across
// departments in proportion to each department's share of the total
// attendance weight. Departments with zero weight receive nothing; when every
// weight is zero the result is empty and the item stays unattributed.
// Values and quantities are rounded to 2 decimal places.
func SplitByWeight(value, quantity decimal.Decimal, weights map[department.Department]decimal.Decimal) map[department.Department]Portion {
	totalWeight := decimal.Zero
	for _, w := range weights {
		totalWeight = totalWeight.Add(w)
	}

	portions := make(map[department.Department]Portion)
	if !totalWeight.IsPositive() {
		return portions
	}

	for dept, w := range weights {
		if !w.IsPositive() {
			continue
		}
		ratio := w.Div(totalWeight)
		portions[dept] = Portion{
			Value:    value.Mul(ratio).Round(2),
			Quantity: quantity.Mul(ratio).Round(2),
		}
	}
	return portions
}
