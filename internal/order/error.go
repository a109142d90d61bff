package order

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderNotPending = errors.New("order is not pending")
	ErrEmptyOrder      = errors.New("no items provided")
	ErrUnauthorized    = errors.New("unauthorized")
)
