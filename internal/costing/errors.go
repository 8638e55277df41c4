package costing

import "errors"

var (
	// ErrInvalidQuantity is returned when a per-box quantity is zero or
	// negative and a per-unit cost cannot be derived from it.
	ErrInvalidQuantity = errors.New("quantity per box must be greater than zero")

	// ErrMarginOutOfRange is returned when a desired profit margin is
	// outside the open interval (0, 100). A margin of 100 or more would
	// divide by zero or flip the suggested price negative.
	ErrMarginOutOfRange = errors.New("profit margin must be between 0 and 100 (exclusive)")
)
