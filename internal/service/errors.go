package service

import (
	"errors"
	"fmt"
)

// Sentinel errors for predictable failure cases, so handlers can map them
// to HTTP results consistently.
var (
	// ErrInvalidCheckout is returned when a checkout request is missing a
	// positive price, a book title, a customer email or a payment id.
	ErrInvalidCheckout = errors.New("invalid checkout request")

	// ErrOrderNotFound indicates that a payment id does not resolve to an
	// existing order.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidStatus is returned for an empty order status update.
	ErrInvalidStatus = errors.New("invalid order status")
)

// ReconcileError marks a store write that failed after payment truth was
// already established with the gateway. It carries the gateway transaction
// id so an operator or a retry can resume at the invoice existence check.
type ReconcileError struct {
	TransactionID string
	Err           error
}

func (e *ReconcileError) Error() string {
	return fmt.Sprintf("reconcile transaction %s: %v", e.TransactionID, e.Err)
}

func (e *ReconcileError) Unwrap() error {
	return e.Err
}
