package delivery

import "errors"

var (
	ErrLineItemNotFound = errors.New("delivery line item not found")
	ErrNoKnownGroup     = errors.New("no delivery group matches a tracked department")
)
