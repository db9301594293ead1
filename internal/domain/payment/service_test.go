package payment

import (
	"context"
	"net/url"
	"testing"
	"time"

	"ecomm-gateway/internal/controller/apperror"
	"ecomm-gateway/pkg/logger"
	"ecomm-gateway/pkg/pointers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	store      *MockOrderStore
	processor  *MockProcessorClient
	currencies *MockCurrencyLookup
	publisher  *MockSettlementPublisher
	audit      *MockAuditSink
}

func testOptions() Options {
	return Options{
		ShopName:       "Shop",
		Language:       "EN",
		ThankYouURL:    "https://shop.example/thank-you",
		CheckoutURL:    "https://shop.example/checkout",
		CertConfigured: true,
	}
}

func paymentService(t *testing.T, opts Options) (*Service, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := serviceMocks{
		store:      NewMockOrderStore(ctrl),
		processor:  NewMockProcessorClient(ctrl),
		currencies: NewMockCurrencyLookup(ctrl),
		publisher:  NewMockSettlementPublisher(ctrl),
		audit:      NewMockAuditSink(ctrl),
	}

	service := NewService(
		logger.New("error"),
		mocks.store,
		mocks.processor,
		mocks.currencies,
		mocks.publisher,
		mocks.audit,
		opts,
	)

	return service, mocks
}

func pendingOrder() Order {
	return Order{
		ID:        "O1",
		Amount:    10.00,
		Currency:  "USD",
		Status:    StatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestService_Initiate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should start a session and attach the transaction id", func(t *testing.T) {
		// given
		service, mocks := paymentService(t, testOptions())

		mocks.store.EXPECT().GetOrder(ctx, "O1").Return(pendingOrder(), nil)
		mocks.currencies.EXPECT().NumericCode("USD").Return("840", nil)
		mocks.processor.EXPECT().StartTransaction(ctx, StartTransactionRequest{
			AmountMinor:  1000,
			CurrencyCode: "840",
			Description:  "Shop - Order O1",
			Language:     "EN",
			ClientIP:     "203.0.113.7",
		}).Return(StartTransactionResult{TransactionID: "T1"}, nil)
		mocks.store.EXPECT().AttachTransactionID(ctx, "O1", "T1").Return(nil)
		mocks.audit.EXPECT().Record(ctx, gomock.Any()).Return(nil)

		// when
		res, err := service.Initiate(ctx, "O1", "203.0.113.7")

		// then
		require.NoError(t, err)
		assert.Equal(t, "T1", res.TransactionID)
		assert.Contains(t, res.RedirectURL, "transaction_id="+url.QueryEscape("T1"))
	})

	t.Run("should urlencode the transaction id in the redirect", func(t *testing.T) {
		service, mocks := paymentService(t, testOptions())

		transID := "abc+/=123"
		mocks.store.EXPECT().GetOrder(ctx, "O1").Return(pendingOrder(), nil)
		mocks.currencies.EXPECT().NumericCode("USD").Return("840", nil)
		mocks.processor.EXPECT().StartTransaction(ctx, gomock.Any()).
			Return(StartTransactionResult{TransactionID: transID}, nil)
		mocks.store.EXPECT().AttachTransactionID(ctx, "O1", transID).Return(nil)
		mocks.audit.EXPECT().Record(ctx, gomock.Any()).Return(nil)

		res, err := service.Initiate(ctx, "O1", "203.0.113.7")

		require.NoError(t, err)
		assert.Contains(t, res.RedirectURL, url.QueryEscape(transID))
		assert.NotContains(t, res.RedirectURL, "abc+/=123")
	})

	t.Run("should fail the order when the processor errors", func(t *testing.T) {
		// given
		service, mocks := paymentService(t, testOptions())

		mocks.store.EXPECT().GetOrder(ctx, "O2").Return(Order{
			ID:       "O2",
			Amount:   25.50,
			Currency: "EUR",
			Status:   StatusPending,
		}, nil)
		mocks.currencies.EXPECT().NumericCode("EUR").Return("978", nil)
		mocks.processor.EXPECT().StartTransaction(ctx, gomock.Any()).
			Return(StartTransactionResult{}, apperror.ErrProcessor)
		mocks.store.EXPECT().MarkFailed(ctx, "O2", gomock.Any()).Return(nil)
		mocks.audit.EXPECT().Record(ctx, gomock.Any()).Return(nil)

		// when
		res, err := service.Initiate(ctx, "O2", "203.0.113.7")

		// then
		assert.ErrorIs(t, err, apperror.ErrProcessor)
		assert.Empty(t, res.RedirectURL)
	})

	t.Run("should fail the order when no transaction id is returned", func(t *testing.T) {
		service, mocks := paymentService(t, testOptions())

		mocks.store.EXPECT().GetOrder(ctx, "O1").Return(pendingOrder(), nil)
		mocks.currencies.EXPECT().NumericCode("USD").Return("840", nil)
		mocks.processor.EXPECT().StartTransaction(ctx, gomock.Any()).
			Return(StartTransactionResult{}, apperror.ErrNoTransactionID)
		mocks.store.EXPECT().MarkFailed(ctx, "O1", gomock.Any()).Return(nil)
		mocks.audit.EXPECT().Record(ctx, gomock.Any()).Return(nil)

		_, err := service.Initiate(ctx, "O1", "203.0.113.7")

		assert.ErrorIs(t, err, apperror.ErrNoTransactionID)
	})

	t.Run("should reject an unknown currency without mutating the order", func(t *testing.T) {
		service, mocks := paymentService(t, testOptions())

		order := pendingOrder()
		order.Currency = "XXX"
		mocks.store.EXPECT().GetOrder(ctx, "O1").Return(order, nil)
		mocks.currencies.EXPECT().NumericCode("XXX").Return("", apperror.ErrUnknownCurrency)

		_, err := service.Initiate(ctx, "O1", "203.0.113.7")

		assert.ErrorIs(t, err, apperror.ErrUnknownCurrency)
	})

	t.Run("should reject an order that is not startable", func(t *testing.T) {
		service, mocks := paymentService(t, testOptions())

		order := pendingOrder()
		order.Status = StatusCompleted
		mocks.store.EXPECT().GetOrder(ctx, "O1").Return(order, nil)

		_, err := service.Initiate(ctx, "O1", "203.0.113.7")

		assert.ErrorIs(t, err, apperror.ErrOrderNotStartable)
	})

	t.Run("should reject an order that already has a transaction id", func(t *testing.T) {
		service, mocks := paymentService(t, testOptions())

		order := pendingOrder()
		order.TransactionID = pointers.Ptr("T0")
		mocks.store.EXPECT().GetOrder(ctx, "O1").Return(order, nil)

		_, err := service.Initiate(ctx, "O1", "203.0.113.7")

		assert.ErrorIs(t, err, apperror.ErrAlreadyInitiated)
	})

	t.Run("should refuse when the certificate is not configured", func(t *testing.T) {
		opts := testOptions()
		opts.CertConfigured = false
		service, _ := paymentService(t, opts)

		_, err := service.Initiate(ctx, "O1", "203.0.113.7")

		assert.ErrorIs(t, err, apperror.ErrConfigurationMissing)
	})

	t.Run("should return not found for a missing order", func(t *testing.T) {
		service, mocks := paymentService(t, testOptions())

		mocks.store.EXPECT().GetOrder(ctx, "nope").Return(Order{}, apperror.ErrOrderNotFound)

		_, err := service.Initiate(ctx, "nope", "203.0.113.7")

		assert.ErrorIs(t, err, apperror.ErrOrderNotFound)
	})
}

func TestService_HandleReturn(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should settle a verified transaction", func(t *testing.T) {
		// given
		service, mocks := paymentService(t, testOptions())

		mocks.store.EXPECT().FindOrderIDByTransactionID(ctx, "T1").Return("O1", nil)
		mocks.processor.EXPECT().GetTransactionResult(ctx, "T1", "203.0.113.7").
			Return(TransactionResult{Result: "OK", Raw: map[string]string{"RESULT": "OK"}}, nil)
		mocks.store.EXPECT().Settle(ctx, "O1", "Charge complete").Return(true, nil)
		mocks.store.EXPECT().GetOrder(ctx, "O1").Return(pendingOrder(), nil)
		mocks.publisher.EXPECT().PublishSettlement(ctx, gomock.Any()).Return(nil)
		mocks.audit.EXPECT().Record(ctx, gomock.Any()).Return(nil)

		// when
		outcome, err := service.HandleReturn(ctx, "T1", "203.0.113.7")

		// then
		require.NoError(t, err)
		assert.True(t, outcome.Settled)
		assert.Equal(t, "https://shop.example/thank-you", outcome.RedirectURL)
	})

	t.Run("should treat a replayed callback as a no-op success", func(t *testing.T) {
		// given
		service, mocks := paymentService(t, testOptions())

		mocks.store.EXPECT().FindOrderIDByTransactionID(ctx, "T1").Return("O1", nil)
		mocks.processor.EXPECT().GetTransactionResult(ctx, "T1", "203.0.113.7").
			Return(TransactionResult{Result: "OK"}, nil)
		// Already completed: no publish, no second settlement side effect.
		mocks.store.EXPECT().Settle(ctx, "O1", "Charge complete").Return(false, nil)
		mocks.audit.EXPECT().Record(ctx, gomock.Any()).Return(nil)

		// when
		outcome, err := service.HandleReturn(ctx, "T1", "203.0.113.7")

		// then
		require.NoError(t, err)
		assert.False(t, outcome.Settled)
		assert.Equal(t, "https://shop.example/thank-you", outcome.RedirectURL)
	})

	t.Run("should redirect to checkout when the transaction id is missing", func(t *testing.T) {
		service, _ := paymentService(t, testOptions())

		outcome, err := service.HandleReturn(ctx, "", "203.0.113.7")

		assert.ErrorIs(t, err, apperror.ErrMissingTransactionID)
		assert.Equal(t, "https://shop.example/checkout", outcome.RedirectURL)
	})

	t.Run("should not mutate anything for an unknown transaction id", func(t *testing.T) {
		service, mocks := paymentService(t, testOptions())

		mocks.store.EXPECT().FindOrderIDByTransactionID(ctx, "T2").
			Return("", apperror.ErrUnknownTransaction)

		outcome, err := service.HandleReturn(ctx, "T2", "203.0.113.7")

		assert.ErrorIs(t, err, apperror.ErrUnknownTransaction)
		assert.Equal(t, "https://shop.example/checkout", outcome.RedirectURL)
	})

	t.Run("should fail the order when the processor does not return OK", func(t *testing.T) {
		// given
		service, mocks := paymentService(t, testOptions())

		mocks.store.EXPECT().FindOrderIDByTransactionID(ctx, "T1").Return("O1", nil)
		mocks.processor.EXPECT().GetTransactionResult(ctx, "T1", "203.0.113.7").
			Return(TransactionResult{Result: "FAILED", Raw: map[string]string{"RESULT": "FAILED"}}, nil)
		mocks.store.EXPECT().MarkFailed(ctx, "O1", gomock.Any()).Return(nil)
		mocks.audit.EXPECT().Record(ctx, gomock.Any()).Return(nil)

		// when
		outcome, err := service.HandleReturn(ctx, "T1", "203.0.113.7")

		// then
		assert.ErrorIs(t, err, apperror.ErrVerificationFailed)
		assert.Equal(t, "https://shop.example/checkout", outcome.RedirectURL)
	})

	t.Run("should fail the order when verification errors", func(t *testing.T) {
		service, mocks := paymentService(t, testOptions())

		mocks.store.EXPECT().FindOrderIDByTransactionID(ctx, "T1").Return("O1", nil)
		mocks.processor.EXPECT().GetTransactionResult(ctx, "T1", "203.0.113.7").
			Return(TransactionResult{}, apperror.ErrProcessorUnreachable)
		mocks.store.EXPECT().MarkFailed(ctx, "O1", gomock.Any()).Return(nil)
		mocks.audit.EXPECT().Record(ctx, gomock.Any()).Return(nil)

		outcome, err := service.HandleReturn(ctx, "T1", "203.0.113.7")

		assert.ErrorIs(t, err, apperror.ErrVerificationFailed)
		assert.Equal(t, "https://shop.example/checkout", outcome.RedirectURL)
	})

	t.Run("should retry transient verification errors when enabled", func(t *testing.T) {
		// given
		opts := testOptions()
		opts.VerifyRetry = &RetryConfig{
			MaxAttempts: 3,
			BaseDelay:   time.Millisecond,
			MaxDelay:    5 * time.Millisecond,
		}
		service, mocks := paymentService(t, opts)

		mocks.store.EXPECT().FindOrderIDByTransactionID(ctx, "T1").Return("O1", nil)
		gomock.InOrder(
			mocks.processor.EXPECT().GetTransactionResult(ctx, "T1", "203.0.113.7").
				Return(TransactionResult{}, apperror.ErrProcessorUnreachable).Times(2),
			mocks.processor.EXPECT().GetTransactionResult(ctx, "T1", "203.0.113.7").
				Return(TransactionResult{Result: "OK"}, nil),
		)
		mocks.store.EXPECT().Settle(ctx, "O1", "Charge complete").Return(true, nil)
		mocks.store.EXPECT().GetOrder(ctx, "O1").Return(pendingOrder(), nil)
		mocks.publisher.EXPECT().PublishSettlement(ctx, gomock.Any()).Return(nil)
		mocks.audit.EXPECT().Record(ctx, gomock.Any()).Return(nil)

		// when
		outcome, err := service.HandleReturn(ctx, "T1", "203.0.113.7")

		// then
		require.NoError(t, err)
		assert.True(t, outcome.Settled)
	})

	t.Run("should never retry an authoritative non-OK result", func(t *testing.T) {
		opts := testOptions()
		opts.VerifyRetry = &RetryConfig{
			MaxAttempts: 3,
			BaseDelay:   time.Millisecond,
			MaxDelay:    5 * time.Millisecond,
		}
		service, mocks := paymentService(t, opts)

		mocks.store.EXPECT().FindOrderIDByTransactionID(ctx, "T1").Return("O1", nil)
		mocks.processor.EXPECT().GetTransactionResult(ctx, "T1", "203.0.113.7").
			Return(TransactionResult{Result: "DECLINED"}, nil)
		mocks.store.EXPECT().MarkFailed(ctx, "O1", gomock.Any()).Return(nil)
		mocks.audit.EXPECT().Record(ctx, gomock.Any()).Return(nil)

		_, err := service.HandleReturn(ctx, "T1", "203.0.113.7")

		assert.ErrorIs(t, err, apperror.ErrVerificationFailed)
	})

	t.Run("should keep the success redirect when publishing fails", func(t *testing.T) {
		service, mocks := paymentService(t, testOptions())

		mocks.store.EXPECT().FindOrderIDByTransactionID(ctx, "T1").Return("O1", nil)
		mocks.processor.EXPECT().GetTransactionResult(ctx, "T1", "203.0.113.7").
			Return(TransactionResult{Result: "OK"}, nil)
		mocks.store.EXPECT().Settle(ctx, "O1", "Charge complete").Return(true, nil)
		mocks.store.EXPECT().GetOrder(ctx, "O1").Return(pendingOrder(), nil)
		mocks.publisher.EXPECT().PublishSettlement(ctx, gomock.Any()).
			Return(assert.AnError)
		mocks.audit.EXPECT().Record(ctx, gomock.Any()).Return(nil)

		outcome, err := service.HandleReturn(ctx, "T1", "203.0.113.7")

		require.NoError(t, err)
		assert.True(t, outcome.Settled)
	})
}

func TestService_HandleReturnFailure(t *testing.T) {
	t.Parallel()

	service, _ := paymentService(t, testOptions())

	msg := service.HandleReturnFailure(context.Background())

	assert.NotEmpty(t, msg)
}

func TestService_CloseBusinessDay(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should return the processor report", func(t *testing.T) {
		service, mocks := paymentService(t, testOptions())

		report := SettlementReport{
			Fields: map[string]string{"RESULT": "OK", "FLD_074": "12"},
			Raw:    "RESULT: OK\nFLD_074: 12",
		}
		mocks.processor.EXPECT().CloseDay(ctx).Return(report, nil)
		mocks.audit.EXPECT().Record(ctx, gomock.Any()).Return(nil)

		got, err := service.CloseBusinessDay(ctx)

		require.NoError(t, err)
		assert.Equal(t, report, got)
	})

	t.Run("should propagate processor errors", func(t *testing.T) {
		service, mocks := paymentService(t, testOptions())

		mocks.processor.EXPECT().CloseDay(ctx).
			Return(SettlementReport{}, apperror.ErrProcessorUnreachable)

		_, err := service.CloseBusinessDay(ctx)

		assert.ErrorIs(t, err, apperror.ErrProcessorUnreachable)
	})
}
