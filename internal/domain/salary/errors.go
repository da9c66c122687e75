package salary

import "errors"

var (
	// ErrNegativeDistributable is returned when the flat bonus carve-out
	// exceeds the money pool. The enclosing transaction must abort; the
	// engine never clamps to zero.
	ErrNegativeDistributable = errors.New("distributable pool is negative after bonus carve-out")

	ErrRecordNotFound = errors.New("salary record not found")

	// ErrUnknownDepartment is returned when a trigger names a label the
	// normalizer cannot map to a tracked department.
	ErrUnknownDepartment = errors.New("unknown or untracked department")
)
