package payment

import (
	"math"
	"slices"
	"time"
)

// Order is the projection of the commerce platform's order record this
// service reads and mutates. Amount and currency are read-only here; the
// only writes are the transaction-id attach and the terminal status
// transition.
type Order struct {
	ID            string    `json:"order_id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Status        Status    `json:"status"`
	TransactionID *string   `json:"transaction_id,omitempty"`
	Note          *string   `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusFailed     Status = "failed"
	StatusCompleted  Status = "completed"
)

var AvailableStatuses = []Status{StatusPending, StatusProcessing, StatusFailed, StatusCompleted}

// Startable reports whether a payment session may be initiated for an
// order in this status.
func (s Status) Startable() bool {
	return s == StatusPending || s == StatusProcessing
}

// Terminal reports whether the status admits no further transition.
func (s Status) Terminal() bool {
	return s == StatusFailed || s == StatusCompleted
}

// NewStatus validates a raw status string.
func NewStatus(raw string) (Status, error) {
	if slices.Contains(AvailableStatuses, Status(raw)) {
		return Status(raw), nil
	}
	return "", ErrInvalidStatus
}

// MinorUnits converts a decimal amount to the processor's minor-unit
// integer representation. Order totals carry at most two fractional
// digits, so rounding here only absorbs float representation noise.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// StartTransactionRequest is the processor's start_transaction input.
type StartTransactionRequest struct {
	AmountMinor  int64
	CurrencyCode string // ISO 4217 numeric, e.g. "840"
	Description  string
	Language     string
	ClientIP     string
}

// StartTransactionResult carries the transaction id issued by the
// processor for one payment attempt.
type StartTransactionResult struct {
	TransactionID string
}

// ResultOK is the processor's success sentinel for get_transaction_result.
const ResultOK = "OK"

// TransactionResult is the processor's authoritative answer for a
// transaction id. Raw holds every field the processor returned, for
// operator diagnosis only.
type TransactionResult struct {
	Result string
	Raw    map[string]string
}

// OK reports whether the processor confirmed the transaction.
func (r TransactionResult) OK() bool {
	return r.Result == ResultOK
}

// SettlementReport is the processor's close_day output.
type SettlementReport struct {
	Fields map[string]string
	Raw    string
}

// InitiateResult is the success payload of Initiate: where to send the
// customer's browser next.
type InitiateResult struct {
	TransactionID string `json:"transaction_id"`
	RedirectURL   string `json:"redirect"`
}

// ReturnOutcome is the result of a return callback: where to redirect the
// customer. Message is always generic; processor detail stays in logs and
// order notes.
type ReturnOutcome struct {
	Settled     bool
	RedirectURL string
	Message     string
}

// SettlementEvent is published once per first-time settlement for
// downstream consumers (receipts, inventory, cart clearing).
type SettlementEvent struct {
	OrderID       string    `json:"order_id"`
	TransactionID string    `json:"transaction_id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	SettledAt     time.Time `json:"settled_at"`
}

// Audit event kinds recorded to the lifecycle audit sink.
const (
	AuditInitiated          = "initiated"
	AuditInitiateFailed     = "initiate_failed"
	AuditVerificationFailed = "verification_failed"
	AuditSettled            = "settled"
	AuditReplay             = "replay"
	AuditDayClosed          = "day_closed"
)

// AuditEvent is one lifecycle audit record.
type AuditEvent struct {
	EventID       string    `json:"event_id"`
	OrderID       string    `json:"order_id,omitempty"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Kind          string    `json:"kind"`
	Detail        string    `json:"detail,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
