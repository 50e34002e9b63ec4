package services

import "errors"

// ErrInvalidPricingInput is returned when an order or invoice would be
// priced from a non-positive unit price or quantity.
var ErrInvalidPricingInput = errors.New("unit price and quantity must be positive")

// ValidationError describes rejected input on a workflow operation
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
