package pricing

import "strings"

// PriceBook is an in-memory index over a batch of catalog rows. A missing
// entry is not an error: Lookup returns a zero Price and found=false, and the
// caller decides whether the miss is worth logging.
type PriceBook struct {
	byCategory map[Category]Price
	byProduct  map[productKey]Price
}

type productKey struct {
	category Category
	name     string
}

// NewPriceBook indexes rows by category and by (category, product name).
// Product names match case-insensitively.
func NewPriceBook(rows []UnitPrice) *PriceBook {
	book := &PriceBook{
		byCategory: make(map[Category]Price),
		byProduct:  make(map[productKey]Price),
	}
	for _, row := range rows {
		price := Price{ProductionCost: row.ProductionCost, LoadingCost: row.LoadingCost}
		if row.ProductName == nil || strings.TrimSpace(*row.ProductName) == "" {
			book.byCategory[row.Category] = price
			continue
		}
		key := productKey{category: row.Category, name: strings.ToLower(strings.TrimSpace(*row.ProductName))}
		book.byProduct[key] = price
	}
	return book
}

// Lookup resolves the price for a category, preferring a product-specific row
// when productName is non-empty. Falls back to the category row, then to a
// zero price.
func (b *PriceBook) Lookup(category Category, productName string) (Price, bool) {
	if name := strings.ToLower(strings.TrimSpace(productName)); name != "" {
		if price, ok := b.byProduct[productKey{category: category, name: name}]; ok {
			return price, true
		}
	}
	if price, ok := b.byCategory[category]; ok {
		return price, true
	}
	return Price{}, false
}
