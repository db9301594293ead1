// Package payment implements the transaction lifecycle: initiating a
// payment session with the processor, handling the bank's return
// callbacks, verifying results and settling orders.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"ecomm-gateway/internal/controller/apperror"
	"ecomm-gateway/pkg/logger"
	"ecomm-gateway/pkg/metrics"

	"github.com/google/uuid"
)

// paymentFormPath is where Initiate points the customer's browser; the
// redirect handler turns it into an auto-submitting form against the
// bank's hosted page.
const paymentFormPath = "/payments/redirect?transaction_id=%s"

// Generic customer-facing messages. Processor detail never goes here.
const (
	msgPaymentFailed   = "We could not process your payment. Please try again."
	msgPaymentComplete = "Payment complete. Thank you!"
	msgTechnicalFault  = "Technical failure in the payment system. Please contact support."
)

// Options carries the deployment-specific knobs of the lifecycle manager.
type Options struct {
	ShopName       string
	Language       string
	ThankYouURL    string
	CheckoutURL    string
	CertConfigured bool

	// VerifyRetry enables bounded retry around transient verification
	// errors when non-nil. Authoritative non-OK results are terminal
	// either way.
	VerifyRetry *RetryConfig
}

// Service coordinates Initiate, Await-Return and Verify-and-Settle
// against the order store and the processor client. It is stateless; all
// persistence goes through the OrderStore port.
type Service struct {
	store      OrderStore
	processor  ProcessorClient
	currencies CurrencyLookup
	publisher  SettlementPublisher
	audit      AuditSink
	log        logger.Interface
	opts       Options
}

func NewService(
	log logger.Interface,
	store OrderStore,
	processor ProcessorClient,
	currencies CurrencyLookup,
	publisher SettlementPublisher,
	audit AuditSink,
	opts Options,
) *Service {
	return &Service{
		store:      store,
		processor:  processor,
		currencies: currencies,
		publisher:  publisher,
		audit:      audit,
		log:        log,
		opts:       opts,
	}
}

// Initiate starts a payment session for the order and returns the
// redirect target for the bank's hosted payment page. On processor
// failure the order is marked failed with an operator note; the order's
// status is untouched on the success path so the return callback can
// settle it.
func (s *Service) Initiate(ctx context.Context, orderID, clientIP string) (InitiateResult, error) {
	if !s.opts.CertConfigured {
		metrics.PaymentInitiationsTotal.WithLabelValues("rejected").Inc()
		return InitiateResult{}, apperror.ErrConfigurationMissing
	}

	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		metrics.PaymentInitiationsTotal.WithLabelValues("rejected").Inc()
		return InitiateResult{}, fmt.Errorf("load order %s: %w", orderID, err)
	}

	if !order.Status.Startable() {
		metrics.PaymentInitiationsTotal.WithLabelValues("rejected").Inc()
		return InitiateResult{}, fmt.Errorf("order %s in status %s: %w", orderID, order.Status, apperror.ErrOrderNotStartable)
	}

	if order.TransactionID != nil {
		metrics.PaymentInitiationsTotal.WithLabelValues("rejected").Inc()
		return InitiateResult{}, fmt.Errorf("order %s: %w", orderID, apperror.ErrAlreadyInitiated)
	}

	numericCurrency, err := s.currencies.NumericCode(order.Currency)
	if err != nil {
		metrics.PaymentInitiationsTotal.WithLabelValues("rejected").Inc()
		return InitiateResult{}, fmt.Errorf("currency %q for order %s: %w", order.Currency, orderID, err)
	}

	req := StartTransactionRequest{
		AmountMinor:  MinorUnits(order.Amount),
		CurrencyCode: numericCurrency,
		Description:  fmt.Sprintf("%s - Order %s", s.opts.ShopName, orderID),
		Language:     s.opts.Language,
		ClientIP:     clientIP,
	}

	start, err := s.processor.StartTransaction(ctx, req)
	if err != nil {
		s.log.Error("initiate failed: order_id=%s amount=%d currency=%s error=%v",
			orderID, req.AmountMinor, req.CurrencyCode, err)

		note := fmt.Sprintf("Payment initiation failed: %v", err)
		if failErr := s.store.MarkFailed(ctx, orderID, note); failErr != nil {
			s.log.Error("mark order failed: order_id=%s error=%v", orderID, failErr)
		}
		s.recordAudit(ctx, AuditEvent{
			OrderID: orderID,
			Kind:    AuditInitiateFailed,
			Detail:  err.Error(),
		})

		metrics.PaymentInitiationsTotal.WithLabelValues("failed").Inc()
		return InitiateResult{}, fmt.Errorf("start transaction for order %s: %w", orderID, err)
	}

	if err := s.store.AttachTransactionID(ctx, orderID, start.TransactionID); err != nil {
		// Transaction id already attached means a concurrent Initiate won
		// the race; the processor session started here is orphaned and
		// expires on its own.
		s.log.Error("attach transaction id: order_id=%s trans_id=%s error=%v",
			orderID, start.TransactionID, err)
		metrics.PaymentInitiationsTotal.WithLabelValues("failed").Inc()
		return InitiateResult{}, fmt.Errorf("attach transaction id to order %s: %w", orderID, err)
	}

	s.log.Info("payment initiated: order_id=%s trans_id=%s amount=%d currency=%s",
		orderID, start.TransactionID, req.AmountMinor, req.CurrencyCode)
	s.recordAudit(ctx, AuditEvent{
		OrderID:       orderID,
		TransactionID: start.TransactionID,
		Kind:          AuditInitiated,
	})
	metrics.PaymentInitiationsTotal.WithLabelValues("started").Inc()

	return InitiateResult{
		TransactionID: start.TransactionID,
		RedirectURL:   fmt.Sprintf(paymentFormPath, url.QueryEscape(start.TransactionID)),
	}, nil
}

// HandleReturn is the synchronous callback for the customer returning
// from the bank's hosted page. It resolves the order, verifies the
// authoritative result with the processor and settles the order. A
// replayed callback for an already-completed order is a no-op that still
// yields the success redirect.
func (s *Service) HandleReturn(ctx context.Context, transID, clientIP string) (ReturnOutcome, error) {
	failure := ReturnOutcome{
		RedirectURL: s.opts.CheckoutURL,
		Message:     msgPaymentFailed,
	}

	if transID == "" {
		s.log.Error("return callback without transaction id")
		metrics.PaymentVerificationsTotal.WithLabelValues("missing_transaction").Inc()
		return failure, apperror.ErrMissingTransactionID
	}

	orderID, err := s.store.FindOrderIDByTransactionID(ctx, transID)
	if err != nil {
		s.log.Error("resolve transaction: trans_id=%s error=%v", transID, err)
		metrics.PaymentVerificationsTotal.WithLabelValues("unknown_transaction").Inc()
		return failure, fmt.Errorf("resolve transaction %s: %w", transID, err)
	}

	result, err := s.verify(ctx, transID, clientIP)
	if err != nil {
		// Never assume success on an ambiguous response. The order is
		// failed with the cause attached for operators; the customer or
		// the bank may re-initiate.
		s.log.Error("verification failed: order_id=%s trans_id=%s error=%v", orderID, transID, err)

		note := fmt.Sprintf("Transaction verification failed: %v", err)
		if failErr := s.store.MarkFailed(ctx, orderID, note); failErr != nil {
			s.log.Error("mark order failed: order_id=%s error=%v", orderID, failErr)
		}
		s.recordAudit(ctx, AuditEvent{
			OrderID:       orderID,
			TransactionID: transID,
			Kind:          AuditVerificationFailed,
			Detail:        err.Error(),
		})

		metrics.PaymentVerificationsTotal.WithLabelValues("failed").Inc()
		return failure, fmt.Errorf("verify transaction %s: %w", transID, apperror.ErrVerificationFailed)
	}

	if !result.OK() {
		raw, _ := json.Marshal(result.Raw)
		s.log.Error("processor did not confirm transaction: order_id=%s trans_id=%s result=%s",
			orderID, transID, raw)

		note := fmt.Sprintf("Processor did not return OK: %s", raw)
		if failErr := s.store.MarkFailed(ctx, orderID, note); failErr != nil {
			s.log.Error("mark order failed: order_id=%s error=%v", orderID, failErr)
		}
		s.recordAudit(ctx, AuditEvent{
			OrderID:       orderID,
			TransactionID: transID,
			Kind:          AuditVerificationFailed,
			Detail:        string(raw),
		})

		metrics.PaymentVerificationsTotal.WithLabelValues("failed").Inc()
		return failure, fmt.Errorf("transaction %s not confirmed: %w", transID, apperror.ErrVerificationFailed)
	}

	metrics.PaymentVerificationsTotal.WithLabelValues("ok").Inc()

	settled, err := s.store.Settle(ctx, orderID, "Charge complete")
	if err != nil {
		s.log.Error("settle order: order_id=%s trans_id=%s error=%v", orderID, transID, err)
		return failure, fmt.Errorf("settle order %s: %w", orderID, err)
	}

	if !settled {
		// Duplicate browser return or bank retry; the first callback
		// already settled the order and triggered downstream effects.
		s.log.Info("replayed return callback: order_id=%s trans_id=%s", orderID, transID)
		s.recordAudit(ctx, AuditEvent{
			OrderID:       orderID,
			TransactionID: transID,
			Kind:          AuditReplay,
		})
		metrics.PaymentSettlementsTotal.WithLabelValues("replay").Inc()

		return ReturnOutcome{
			Settled:     false,
			RedirectURL: s.opts.ThankYouURL,
			Message:     msgPaymentComplete,
		}, nil
	}

	s.log.Info("charge complete: order_id=%s trans_id=%s", orderID, transID)
	s.publishSettlement(ctx, orderID, transID)
	s.recordAudit(ctx, AuditEvent{
		OrderID:       orderID,
		TransactionID: transID,
		Kind:          AuditSettled,
	})
	metrics.PaymentSettlementsTotal.WithLabelValues("settled").Inc()

	return ReturnOutcome{
		Settled:     true,
		RedirectURL: s.opts.ThankYouURL,
		Message:     msgPaymentComplete,
	}, nil
}

// HandleReturnFailure is the bank's designated technical-failure return
// path. No transaction id is guaranteed present, so no order is looked up
// or mutated; the customer gets a terminal error message.
func (s *Service) HandleReturnFailure(ctx context.Context) string {
	s.log.Error("customer returned via the technical-failure path")
	return msgTechnicalFault
}

// CloseBusinessDay invokes the processor's batch settlement. It mutates
// no order; the report is logged and returned for the operator.
func (s *Service) CloseBusinessDay(ctx context.Context) (SettlementReport, error) {
	report, err := s.processor.CloseDay(ctx)
	if err != nil {
		s.log.Error("close business day: %v", err)
		return SettlementReport{}, fmt.Errorf("close business day: %w", err)
	}

	s.log.Info("business day closed: %s", report.Raw)
	s.recordAudit(ctx, AuditEvent{
		Kind:   AuditDayClosed,
		Detail: report.Raw,
	})

	return report, nil
}

// verify calls get_transaction_result, optionally retrying transient
// errors.
func (s *Service) verify(ctx context.Context, transID, clientIP string) (TransactionResult, error) {
	var result TransactionResult

	call := func() error {
		r, err := s.processor.GetTransactionResult(ctx, transID, clientIP)
		if err != nil {
			return err
		}
		result = r
		return nil
	}

	if s.opts.VerifyRetry != nil {
		if err := doWithRetry(ctx, *s.opts.VerifyRetry, call); err != nil {
			return TransactionResult{}, err
		}
		return result, nil
	}

	if err := call(); err != nil {
		return TransactionResult{}, err
	}
	return result, nil
}

// publishSettlement emits the settlement event; publish failures are
// logged, not surfaced, because the order transition already committed.
func (s *Service) publishSettlement(ctx context.Context, orderID, transID string) {
	if s.publisher == nil {
		return
	}

	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		s.log.Error("load settled order for event: order_id=%s error=%v", orderID, err)
		return
	}

	event := SettlementEvent{
		OrderID:       orderID,
		TransactionID: transID,
		Amount:        order.Amount,
		Currency:      order.Currency,
		SettledAt:     time.Now().UTC(),
	}
	if err := s.publisher.PublishSettlement(ctx, event); err != nil {
		s.log.Error("publish settlement event: order_id=%s error=%v", orderID, err)
	}
}

func (s *Service) recordAudit(ctx context.Context, event AuditEvent) {
	if s.audit == nil {
		return
	}

	event.EventID = uuid.NewString()
	event.CreatedAt = time.Now().UTC()

	if err := s.audit.Record(ctx, event); err != nil {
		s.log.Error("record audit event: kind=%s order_id=%s error=%v",
			event.Kind, event.OrderID, err)
	}
}
