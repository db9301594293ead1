// Package ecomm implements the bank payment processor client. The
// processor speaks form-encoded POSTs over mutual TLS and answers with
// "KEY: value" lines.
package ecomm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ecomm-gateway/internal/controller/apperror"
	"ecomm-gateway/internal/domain/payment"

	"github.com/google/go-querystring/query"
)

type Client struct {
	MerchantURL string
	HTTP        *http.Client
}

var _ payment.ProcessorClient = (*Client)(nil)

func New(merchantURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	return &Client{
		MerchantURL: merchantURL,
		HTTP:        httpClient,
	}
}

// NewWithCertificate builds a client with the merchant TLS certificate
// loaded from certPath (PEM, key optionally passphrase-protected).
func NewWithCertificate(merchantURL, certPath, passphrase string, timeout time.Duration) (*Client, error) {
	transport, err := newCertTransport(certPath, passphrase)
	if err != nil {
		return nil, fmt.Errorf("load merchant certificate: %w", err)
	}

	return New(merchantURL, &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}), nil
}

type startReq struct {
	Command     string `url:"command"`
	Amount      int64  `url:"amount"`
	Currency    string `url:"currency"`
	ClientIP    string `url:"client_ip_addr"`
	Description string `url:"description"`
	Language    string `url:"language"`
	MsgType     string `url:"msg_type"`
}

type resultReq struct {
	Command  string `url:"command"`
	TransID  string `url:"trans_id"`
	ClientIP string `url:"client_ip_addr"`
}

type closeDayReq struct {
	Command string `url:"command"`
}

// StartTransaction registers a payment session (command=v, single-message
// mode) and returns the transaction id the processor issued.
func (c *Client) StartTransaction(ctx context.Context, req payment.StartTransactionRequest) (payment.StartTransactionResult, error) {
	fields, _, err := c.post(ctx, startReq{
		Command:     "v",
		Amount:      req.AmountMinor,
		Currency:    req.CurrencyCode,
		ClientIP:    req.ClientIP,
		Description: req.Description,
		Language:    req.Language,
		MsgType:     "SMS",
	})
	if err != nil {
		return payment.StartTransactionResult{}, err
	}

	if msg, ok := fields["error"]; ok {
		return payment.StartTransactionResult{}, fmt.Errorf("%w: %s", apperror.ErrProcessor, msg)
	}

	transID, ok := fields["TRANSACTION_ID"]
	if !ok || transID == "" {
		return payment.StartTransactionResult{}, apperror.ErrNoTransactionID
	}

	return payment.StartTransactionResult{TransactionID: transID}, nil
}

// GetTransactionResult fetches the authoritative result for a transaction
// id (command=c).
func (c *Client) GetTransactionResult(ctx context.Context, transID, clientIP string) (payment.TransactionResult, error) {
	fields, _, err := c.post(ctx, resultReq{
		Command:  "c",
		TransID:  transID,
		ClientIP: clientIP,
	})
	if err != nil {
		return payment.TransactionResult{}, err
	}

	if msg, ok := fields["error"]; ok {
		return payment.TransactionResult{}, fmt.Errorf("%w: %s", apperror.ErrProcessor, msg)
	}

	return payment.TransactionResult{
		Result: fields["RESULT"],
		Raw:    fields,
	}, nil
}

// CloseDay runs the processor's batch settlement (command=b).
func (c *Client) CloseDay(ctx context.Context) (payment.SettlementReport, error) {
	fields, raw, err := c.post(ctx, closeDayReq{Command: "b"})
	if err != nil {
		return payment.SettlementReport{}, err
	}

	if msg, ok := fields["error"]; ok {
		return payment.SettlementReport{}, fmt.Errorf("%w: %s", apperror.ErrProcessor, msg)
	}

	return payment.SettlementReport{
		Fields: fields,
		Raw:    raw,
	}, nil
}

// post form-encodes req, sends it to the merchant handler and parses the
// key:value response body.
func (c *Client) post(ctx context.Context, req interface{}) (map[string]string, string, error) {
	vals, err := query.Values(req)
	if err != nil {
		return nil, "", fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.MerchantURL,
		strings.NewReader(vals.Encode()),
	)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", apperror.ErrProcessorUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: read response: %v", apperror.ErrProcessorUnreachable, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, "", fmt.Errorf("%w: processor %s: %s", apperror.ErrProcessorUnreachable, resp.Status, raw)
	}
	if resp.StatusCode/100 != 2 {
		return nil, "", fmt.Errorf("%w: processor %s: %s", apperror.ErrProcessor, resp.Status, raw)
	}

	return parseFields(string(raw)), string(raw), nil
}

// parseFields splits a "KEY: value" line response into a map. Lines
// without a colon are ignored.
func parseFields(body string) map[string]string {
	fields := make(map[string]string)

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return fields
}
