package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestPriceBookLookup(t *testing.T) {
	rows := []UnitPrice{
		{Category: CategoryPolizol, ProductionCost: decimal.NewFromInt(500), LoadingCost: decimal.NewFromInt(50)},
		{Category: CategoryGranula, ProductName: strPtr("Granula M-1"), ProductionCost: decimal.NewFromInt(300), LoadingCost: decimal.NewFromInt(30)},
		{Category: CategoryGranula, ProductionCost: decimal.NewFromInt(250), LoadingCost: decimal.NewFromInt(25)},
	}
	book := NewPriceBook(rows)

	price, found := book.Lookup(CategoryPolizol, "")
	assert.True(t, found)
	assert.True(t, price.ProductionCost.Equal(decimal.NewFromInt(500)))

	// product-specific row wins, case-insensitively
	price, found = book.Lookup(CategoryGranula, "granula m-1")
	assert.True(t, found)
	assert.True(t, price.ProductionCost.Equal(decimal.NewFromInt(300)))

	// unknown product falls back to the category row
	price, found = book.Lookup(CategoryGranula, "granula m-9")
	assert.True(t, found)
	assert.True(t, price.ProductionCost.Equal(decimal.NewFromInt(250)))
}

func TestPriceBookLookupMissingIsZeroNotError(t *testing.T) {
	book := NewPriceBook(nil)

	price, found := book.Lookup(CategoryRuberoid, "")
	assert.False(t, found)
	assert.True(t, price.ProductionCost.IsZero())
	assert.True(t, price.LoadingCost.IsZero())
}
