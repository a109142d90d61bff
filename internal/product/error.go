package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidType     = errors.New("invalid product type")

	// ErrCodeContention is returned when repeated product-code collisions
	// exhaust the retry budget. Callers treat it as an internal error; it is
	// not a user input problem.
	ErrCodeContention = errors.New("product code allocation exhausted retries")
)
