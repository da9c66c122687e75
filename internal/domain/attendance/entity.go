package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance is one worker-day entry from the intake sheets. Department is
// kept exactly as entered; canonical grouping happens in the normalizer at
// allocation time. ShiftShare stores the raw enumerated value; the
// managerial +0.2 adjustment is never persisted.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Department string
	ShiftShare decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

// AllowedShiftShares is the closed set of shift share values intake accepts.
var AllowedShiftShares = []decimal.Decimal{
	decimal.NewFromFloat(0.33),
	decimal.NewFromFloat(0.5),
	decimal.NewFromFloat(0.75),
	decimal.NewFromInt(1),
	decimal.NewFromFloat(1.5),
	decimal.NewFromInt(2),
}

// IsAllowedShiftShare reports whether v is one of the enumerated shares.
func IsAllowedShiftShare(v decimal.Decimal) bool {
	for _, allowed := range AllowedShiftShares {
		if v.Equal(allowed) {
			return true
		}
	}
	return false
}
