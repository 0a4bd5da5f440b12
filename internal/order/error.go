package order

import "errors"

var (
	ErrNotFound          = errors.New("order not found")
	ErrNotOwner          = errors.New("order belongs to another user")
	ErrNoItems           = errors.New("no recognizable items in order text")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrBadID             = errors.New("malformed order id")
)
