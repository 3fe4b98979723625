// Package payment validates and submits peer-to-peer transfers, then
// refreshes the sender's snapshot so the caller sees the moved balance.
package payment

import (
	"context"
	"fmt"

	"github.com/bank-system/teller/internal/api"
	"github.com/bank-system/teller/internal/model"
	"github.com/bank-system/teller/internal/validation"
)

// PaymentAPI is the slice of the transport the submitter needs.
type PaymentAPI interface {
	InitiatePayment(ctx context.Context, payment api.PaymentRequest) (*api.PaymentResponse, error)
}

// SnapshotRefresher re-fetches the sender's account after a successful
// transfer. Satisfied by gateway.AccountGateway.
type SnapshotRefresher interface {
	FetchAccount(ctx context.Context, accountNumber string) (*model.AccountSnapshot, error)
}

// Result reports one submission. Snapshot is the refreshed sender account,
// nil when the post-payment refresh failed; RefreshErr then explains why.
// A non-nil Result always means the payment itself went through.
type Result struct {
	Message    string
	Snapshot   *model.AccountSnapshot
	RefreshErr error
}

type Submitter struct {
	client   PaymentAPI
	gateway  SnapshotRefresher
	currency string

	// newKey is swappable so tests can observe generated keys.
	newKey func() string
}

func NewSubmitter(client PaymentAPI, gateway SnapshotRefresher, currency string) *Submitter {
	return &Submitter{
		client:   client,
		gateway:  gateway,
		currency: currency,
		newKey:   NewIdempotencyKey,
	}
}

// Submit validates the payment, sends it, and on success refreshes the
// sender's snapshot. Validation runs before any network call, first
// failure wins: amount, then sender. Each attempt carries a fresh
// idempotency key. The transfer response is fully observed before the
// refresh is issued; the two calls are never concurrent.
func (s *Submitter) Submit(ctx context.Context, sender *model.AccountSnapshot, recipientID, amountText string) (*Result, error) {
	amount, err := validation.ParseAmount(amountText)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, amountText)
	}

	if sender == nil || sender.AccountNumber == "" {
		return nil, ErrNoSenderAccount
	}

	confirmation, err := s.client.InitiatePayment(ctx, api.PaymentRequest{
		SenderAccountID:   sender.AccountNumber,
		ReceiverAccountID: recipientID,
		Amount:            amount,
		Currency:          s.currency,
		IdempotencyKey:    s.newKey(),
	})
	if err != nil {
		return nil, err
	}

	message := confirmation.Message
	if message == "" {
		message = "Payment successful!"
	}

	refreshed, err := s.gateway.FetchAccount(ctx, sender.AccountNumber)
	if err != nil {
		// The payment went through; only the refresh failed. Report it
		// separately so the caller doesn't show a false payment failure.
		return &Result{Message: message, RefreshErr: err}, nil
	}

	return &Result{Message: message, Snapshot: refreshed}, nil
}
