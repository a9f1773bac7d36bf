// internal/storage/errors.go
package storage

import "errors"

// ErrOrderNotFound is returned when no stored order matches the requested
// id. The text is part of the wire contract ({"error": "Order not found"}).
var ErrOrderNotFound = errors.New("Order not found")

// InvalidOrderError carries the validation message for a rejected create or
// update. Handlers surface Reason verbatim as the 400 body.
type InvalidOrderError struct {
	Reason string
}

func (e *InvalidOrderError) Error() string {
	return e.Reason
}
