// Package api is the HTTP transport for the two backend collaborators: the
// account service (balance and history reads) and the payment service
// (transfer initiation). Wire shapes live here; domain mapping does not.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/bank-system/teller/internal/config"
)

type AccountResponse struct {
	AccountNumber     string                `json:"accountNumber"`
	AccountHolderName string                `json:"accountHolderName"`
	Balance           float64               `json:"balance"`
	Transactions      []TransactionResponse `json:"transactions"`
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
}

type PaymentRequest struct {
	SenderAccountID   string  `json:"senderAccountId"`
	ReceiverAccountID string  `json:"receiverAccountId"`
	Amount            float64 `json:"amount"`
	Currency          string  `json:"currency"`
	IdempotencyKey    string  `json:"idempotencyKey"`
}

type PaymentResponse struct {
	Message string `json:"message"`
}

// errorBody is the optional shape of non-2xx response bodies.
type errorBody struct {
	Message string `json:"message"`
}

type Client struct {
	httpClient        *http.Client
	accountServiceURL string
	paymentServiceURL string
}

func NewClient(cfg config.APIConfig) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		accountServiceURL: cfg.AccountServiceURL,
		paymentServiceURL: cfg.PaymentServiceURL,
	}
}

// GetAccount fetches the account details (holder, balance, transactions)
// for the given account number. One round trip, no retries.
func (c *Client) GetAccount(ctx context.Context, accountNumber string) (*AccountResponse, error) {
	endpoint := fmt.Sprintf("%s/api/accounts/by-account-number/%s",
		c.accountServiceURL, url.PathEscape(accountNumber))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build account request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("account service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	var account AccountResponse
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, fmt.Errorf("failed to decode account response: %w", err)
	}

	return &account, nil
}

// InitiatePayment posts a transfer to the payment service. The caller owns
// idempotency-key generation; the client sends the request exactly once.
func (c *Client) InitiatePayment(ctx context.Context, payment PaymentRequest) (*PaymentResponse, error) {
	endpoint := c.paymentServiceURL + "/api/payments/initiate"

	body, err := json.Marshal(payment)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build payment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	var confirmation PaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&confirmation); err != nil {
		return nil, fmt.Errorf("failed to decode payment response: %w", err)
	}

	return &confirmation, nil
}

// decodeError turns a non-2xx response into an APIError, keeping the server
// message when the body carries one.
func decodeError(resp *http.Response) error {
	var body errorBody
	_ = json.NewDecoder(resp.Body).Decode(&body)

	return newAPIError(resp.StatusCode, body.Message)
}
