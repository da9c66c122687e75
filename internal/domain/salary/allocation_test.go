package salary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func share(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestAllocateProportional(t *testing.T) {
	// 3 workers [1, 1, 0.5], producedCount=100 at unit cost 500 => pool 50,000.
	// perShareRate = 50,000 / 2.5 = 20,000.
	workers := []WorkerShare{
		{EmployeeID: "w1", ShiftShare: share(1)},
		{EmployeeID: "w2", ShiftShare: share(1)},
		{EmployeeID: "w3", ShiftShare: share(0.5)},
	}

	alloc, err := Allocate(decimal.NewFromInt(50000), workers, decimal.NewFromInt(100000))
	require.NoError(t, err)

	assert.True(t, alloc.PerShareRate.Equal(decimal.NewFromInt(20000)), "rate = %s", alloc.PerShareRate)
	assert.True(t, alloc.Amounts[0].Equal(decimal.NewFromInt(20000)))
	assert.True(t, alloc.Amounts[1].Equal(decimal.NewFromInt(20000)))
	assert.True(t, alloc.Amounts[2].Equal(decimal.NewFromInt(10000)))
}

func TestAllocateNegativeDistributableFails(t *testing.T) {
	// One extra shift at 1.5 triggers the 100,000 flat bonus; a 60,000 pool
	// cannot fund it. Must fail, never clamp to zero.
	workers := []WorkerShare{
		{EmployeeID: "w1", ShiftShare: share(1.5), ExtraShift: true},
	}

	_, err := Allocate(decimal.NewFromInt(60000), workers, decimal.NewFromInt(100000))
	assert.ErrorIs(t, err, ErrNegativeDistributable)
}

func TestAllocateExtraShiftBonus(t *testing.T) {
	workers := []WorkerShare{
		{EmployeeID: "w1", ShiftShare: share(1)},
		{EmployeeID: "w2", ShiftShare: share(1.5), ExtraShift: true},
	}
	bonus := decimal.NewFromInt(100000)
	pool := decimal.NewFromInt(350000)

	alloc, err := Allocate(pool, workers, bonus)
	require.NoError(t, err)

	// distributable = 250,000 over 2.5 shares => rate 100,000
	assert.True(t, alloc.PerShareRate.Equal(decimal.NewFromInt(100000)))
	assert.True(t, alloc.Amounts[0].Equal(decimal.NewFromInt(100000)))
	// 1.5 * 100,000 + flat bonus
	assert.True(t, alloc.Amounts[1].Equal(decimal.NewFromInt(250000)))
}

func TestAllocateZeroTotalShare(t *testing.T) {
	alloc, err := Allocate(decimal.NewFromInt(40000), nil, decimal.NewFromInt(100000))
	require.NoError(t, err)
	assert.True(t, alloc.PerShareRate.IsZero())
	assert.Empty(t, alloc.Amounts)
}

func TestAllocateConservation(t *testing.T) {
	workers := []WorkerShare{
		{EmployeeID: "w1", ShiftShare: share(0.33)},
		{EmployeeID: "w2", ShiftShare: share(0.75)},
		{EmployeeID: "w3", ShiftShare: share(1)},
		{EmployeeID: "w4", ShiftShare: share(1.5), ExtraShift: true},
		{EmployeeID: "w5", ShiftShare: share(2), ExtraShift: true},
	}
	bonus := decimal.NewFromInt(100000)
	pool := decimal.NewFromInt(1234567)

	alloc, err := Allocate(pool, workers, bonus)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, amount := range alloc.Amounts {
		sum = sum.Add(amount)
	}
	// Σ amounts ≈ pool, tolerance = one currency unit per worker of rounding.
	diff := sum.Sub(pool).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromInt(int64(len(workers)))),
		"conservation off by %s", diff)
}

func TestAllocateProportionalityBetweenWorkers(t *testing.T) {
	workers := []WorkerShare{
		{EmployeeID: "w1", ShiftShare: share(0.5)},
		{EmployeeID: "w2", ShiftShare: share(1)},
	}

	alloc, err := Allocate(decimal.NewFromInt(90000), workers, decimal.NewFromInt(100000))
	require.NoError(t, err)

	// amount(w)/share(w) must agree across workers with no bonus involved
	ratio1 := alloc.Amounts[0].Div(workers[0].ShiftShare)
	ratio2 := alloc.Amounts[1].Div(workers[1].ShiftShare)
	assert.True(t, ratio1.Sub(ratio2).Abs().LessThanOrEqual(decimal.NewFromInt(2)),
		"ratios %s vs %s", ratio1, ratio2)
}

func TestAllocateManagerShareIsNotExtraShift(t *testing.T) {
	// A manager's adjusted 1.2 share exceeds 1 but must not trigger the
	// flat-bonus carve-out.
	workers := []WorkerShare{
		{EmployeeID: "w1", ShiftShare: share(1.2), ExtraShift: false},
		{EmployeeID: "w2", ShiftShare: share(1)},
	}

	alloc, err := Allocate(decimal.NewFromInt(22000), workers, decimal.NewFromInt(100000))
	require.NoError(t, err)
	assert.True(t, alloc.BonusTotal.IsZero())
	assert.True(t, alloc.PerShareRate.Equal(decimal.NewFromInt(10000)))
	assert.True(t, alloc.Amounts[0].Equal(decimal.NewFromInt(12000)))
}
