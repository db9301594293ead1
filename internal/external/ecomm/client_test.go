package ecomm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"ecomm-gateway/internal/controller/apperror"
	"ecomm-gateway/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// processorStub captures the last form the client POSTed and replies with
// a canned "KEY: value" body.
func processorStub(t *testing.T, status int, body string) (*Client, *url.Values) {
	t.Helper()

	var lastForm url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		lastForm = r.PostForm

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return New(srv.URL, srv.Client()), &lastForm
}

func TestClient_StartTransaction(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	req := payment.StartTransactionRequest{
		AmountMinor:  1999,
		CurrencyCode: "840",
		Description:  "Shop - Order O1",
		Language:     "EN",
		ClientIP:     "203.0.113.7",
	}

	t.Run("should send command v with single-message fields", func(t *testing.T) {
		// given
		client, form := processorStub(t, http.StatusOK, "TRANSACTION_ID: abc123")

		// when
		res, err := client.StartTransaction(ctx, req)

		// then
		require.NoError(t, err)
		assert.Equal(t, "abc123", res.TransactionID)

		assert.Equal(t, "v", form.Get("command"))
		assert.Equal(t, "1999", form.Get("amount"))
		assert.Equal(t, "840", form.Get("currency"))
		assert.Equal(t, "203.0.113.7", form.Get("client_ip_addr"))
		assert.Equal(t, "Shop - Order O1", form.Get("description"))
		assert.Equal(t, "EN", form.Get("language"))
		assert.Equal(t, "SMS", form.Get("msg_type"))
	})

	t.Run("should surface a processor error field", func(t *testing.T) {
		client, _ := processorStub(t, http.StatusOK, "error: invalid merchant")

		_, err := client.StartTransaction(ctx, req)

		assert.ErrorIs(t, err, apperror.ErrProcessor)
		assert.ErrorContains(t, err, "invalid merchant")
	})

	t.Run("should reject a response without a transaction id", func(t *testing.T) {
		client, _ := processorStub(t, http.StatusOK, "RESULT: CREATED")

		_, err := client.StartTransaction(ctx, req)

		assert.ErrorIs(t, err, apperror.ErrNoTransactionID)
	})

	t.Run("should map a 5xx to a transient error", func(t *testing.T) {
		client, _ := processorStub(t, http.StatusBadGateway, "")

		_, err := client.StartTransaction(ctx, req)

		assert.ErrorIs(t, err, apperror.ErrProcessorUnreachable)
	})

	t.Run("should map a 4xx to a processor error", func(t *testing.T) {
		client, _ := processorStub(t, http.StatusBadRequest, "")

		_, err := client.StartTransaction(ctx, req)

		assert.ErrorIs(t, err, apperror.ErrProcessor)
		assert.NotErrorIs(t, err, apperror.ErrProcessorUnreachable)
	})

	t.Run("should map a connection failure to a transient error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()
		client := New(srv.URL, nil)

		_, err := client.StartTransaction(ctx, req)

		assert.ErrorIs(t, err, apperror.ErrProcessorUnreachable)
	})
}

func TestClient_GetTransactionResult(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should send command c and parse the result fields", func(t *testing.T) {
		// given
		client, form := processorStub(t, http.StatusOK,
			"RESULT: OK\nRESULT_CODE: 000\nCARD_NUMBER: 4***1111")

		// when
		res, err := client.GetTransactionResult(ctx, "abc123", "203.0.113.7")

		// then
		require.NoError(t, err)
		assert.Equal(t, "OK", res.Result)
		assert.True(t, res.OK())
		assert.Equal(t, "000", res.Raw["RESULT_CODE"])
		assert.Equal(t, "4***1111", res.Raw["CARD_NUMBER"])

		assert.Equal(t, "c", form.Get("command"))
		assert.Equal(t, "abc123", form.Get("trans_id"))
		assert.Equal(t, "203.0.113.7", form.Get("client_ip_addr"))
	})

	t.Run("should keep a non-OK result with its raw fields", func(t *testing.T) {
		client, _ := processorStub(t, http.StatusOK, "RESULT: FAILED\nRESULT_CODE: 116")

		res, err := client.GetTransactionResult(ctx, "abc123", "203.0.113.7")

		require.NoError(t, err)
		assert.False(t, res.OK())
		assert.Equal(t, "116", res.Raw["RESULT_CODE"])
	})

	t.Run("should surface a processor error field", func(t *testing.T) {
		client, _ := processorStub(t, http.StatusOK, "error: unknown transaction")

		_, err := client.GetTransactionResult(ctx, "abc123", "203.0.113.7")

		assert.ErrorIs(t, err, apperror.ErrProcessor)
	})
}

func TestClient_CloseDay(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should send command b and return the full report", func(t *testing.T) {
		// given
		body := "RESULT: OK\nRESULT_CODE: 500\nFLD_074: 12\nFLD_076: 14"
		client, form := processorStub(t, http.StatusOK, body)

		// when
		report, err := client.CloseDay(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, "b", form.Get("command"))
		assert.Equal(t, body, report.Raw)
		assert.Equal(t, "12", report.Fields["FLD_074"])
	})

	t.Run("should surface a processor error field", func(t *testing.T) {
		client, _ := processorStub(t, http.StatusOK, "error: batch already closed")

		_, err := client.CloseDay(ctx)

		assert.ErrorIs(t, err, apperror.ErrProcessor)
	})
}

func TestParseFields(t *testing.T) {
	t.Parallel()

	fields := parseFields("TRANSACTION_ID: abc+/=\n\nRESULT: OK\ngarbage line\n  RRN:  12345  ")

	assert.Equal(t, map[string]string{
		"TRANSACTION_ID": "abc+/=",
		"RESULT":         "OK",
		"RRN":            "12345",
	}, fields)
}
