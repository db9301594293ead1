// Package apperror defines the sentinel errors shared between the payment
// domain and the HTTP layer.
package apperror

import "errors"

var (
	// ErrConfigurationMissing is returned when the processor certificate is
	// not configured. Surfaced to operators, never to customers.
	ErrConfigurationMissing = errors.New("processor certificate not configured")

	// ErrUnknownCurrency is returned when an order's currency has no ISO
	// 4217 numeric mapping.
	ErrUnknownCurrency = errors.New("unknown currency code")

	// ErrOrderNotFound is returned when the order store has no such order.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderNotStartable is returned when Initiate is called on an order
	// that is already in a terminal status.
	ErrOrderNotStartable = errors.New("order is not in a startable status")

	// ErrAlreadyInitiated is returned when an order already carries a
	// transaction id; the attach is first-write-wins.
	ErrAlreadyInitiated = errors.New("order already has a transaction id")

	// ErrNoTransactionID is returned when the processor answered the start
	// call without a TRANSACTION_ID field.
	ErrNoTransactionID = errors.New("processor did not return a transaction id")

	// ErrProcessor is returned for explicit processor errors.
	ErrProcessor = errors.New("processor error")

	// ErrProcessorUnreachable is returned for network failures talking to
	// the processor. Retryable, unlike ErrProcessor.
	ErrProcessorUnreachable = errors.New("processor unreachable")

	// ErrMissingTransactionID is returned when a return callback carries no
	// trans_id parameter.
	ErrMissingTransactionID = errors.New("callback did not include a transaction id")

	// ErrUnknownTransaction is returned when no order maps to the given
	// transaction id. Covers replayed or forged ids for unrelated orders.
	ErrUnknownTransaction = errors.New("no order found for transaction id")

	// ErrVerificationFailed is returned when the processor did not confirm
	// the transaction succeeded.
	ErrVerificationFailed = errors.New("transaction verification failed")
)
