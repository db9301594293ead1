package payment

import "context"

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=payment

// OrderStore is the order-store adapter contract. Uniqueness of the
// transaction-id index and the conditional-write semantics of
// AttachTransactionID and Settle are this adapter's responsibility.
type OrderStore interface {
	// GetOrder returns the order or apperror.ErrOrderNotFound.
	GetOrder(ctx context.Context, orderID string) (Order, error)

	// FindOrderIDByTransactionID resolves the secondary index or returns
	// apperror.ErrUnknownTransaction.
	FindOrderIDByTransactionID(ctx context.Context, transID string) (string, error)

	// AttachTransactionID sets the order's transaction id if it is null.
	// Returns apperror.ErrAlreadyInitiated when one is already attached.
	AttachTransactionID(ctx context.Context, orderID, transID string) error

	// MarkFailed transitions the order to failed and appends the note.
	MarkFailed(ctx context.Context, orderID, note string) error

	// Settle transitions the order to completed, appending the note.
	// Returns false without error when the order is already completed, so
	// callers can treat replays as no-ops.
	Settle(ctx context.Context, orderID, note string) (bool, error)
}

// ProcessorClient is the payment processor contract: blocking network
// calls with their own failure modes. Network failures surface as
// apperror.ErrProcessorUnreachable, explicit processor errors as
// apperror.ErrProcessor.
type ProcessorClient interface {
	StartTransaction(ctx context.Context, req StartTransactionRequest) (StartTransactionResult, error)
	GetTransactionResult(ctx context.Context, transID, clientIP string) (TransactionResult, error)
	CloseDay(ctx context.Context) (SettlementReport, error)
}

// CurrencyLookup maps ISO 4217 alpha codes to numeric codes.
type CurrencyLookup interface {
	NumericCode(alpha string) (string, error)
}

// SettlementPublisher fans settlement events out to downstream consumers.
type SettlementPublisher interface {
	PublishSettlement(ctx context.Context, event SettlementEvent) error
}

// AuditSink records lifecycle events for operator diagnosis. Sink failures
// never fail the payment flow.
type AuditSink interface {
	Record(ctx context.Context, event AuditEvent) error
}
