package salary

import (
	"github.com/shopspring/decimal"
)

// Allocation is the result of distributing one money pool over a snapshot.
// Amounts is index-aligned with the workers passed in.
type Allocation struct {
	// PerShareRate is the distributable pool divided by the total shift
	// share, the unit price of one share for this pool.
	PerShareRate decimal.Decimal
	TotalShare   decimal.Decimal
	BonusTotal   decimal.Decimal
	Amounts      []decimal.Decimal
}

// Allocate turns a money pool and a set of worker shares into per-worker
// amounts.
//
// The flat extra-shift bonus is carved out of the pool first: every
// extra-shift worker gets extraShiftBonus on top of their proportional
// amount, and the pool funding those bonuses shrinks accordingly. A pool too
// small to fund the carve-out is an invariant violation, not a rounding
// problem, so the computation fails instead of producing negative shares.
//
// A zero total share with a nonzero pool yields a zero rate and all-zero
// amounts; the pool stays attributed to the record's total by the caller.
func Allocate(pool decimal.Decimal, workers []WorkerShare, extraShiftBonus decimal.Decimal) (Allocation, error) {
	alloc := Allocation{
		PerShareRate: decimal.Zero,
		TotalShare:   decimal.Zero,
		BonusTotal:   decimal.Zero,
		Amounts:      make([]decimal.Decimal, len(workers)),
	}

	for _, w := range workers {
		alloc.TotalShare = alloc.TotalShare.Add(w.ShiftShare)
		if w.ExtraShift {
			alloc.BonusTotal = alloc.BonusTotal.Add(extraShiftBonus)
		}
	}

	distributable := pool.Sub(alloc.BonusTotal)
	if distributable.IsNegative() {
		return Allocation{}, ErrNegativeDistributable
	}

	if alloc.TotalShare.IsPositive() {
		alloc.PerShareRate = distributable.Div(alloc.TotalShare)
	}

	for i, w := range workers {
		amount := alloc.PerShareRate.Mul(w.ShiftShare).Round(0)
		if w.ExtraShift {
			amount = amount.Add(extraShiftBonus)
		}
		alloc.Amounts[i] = amount
	}

	return alloc, nil
}
