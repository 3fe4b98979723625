// Package session owns the client's page state machine: which screen is
// active, the authenticated account snapshot, and the latest status
// message. All mutation goes through Controller transition methods; there
// is no other way to touch the Session.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/bank-system/teller/internal/api"
	"github.com/bank-system/teller/internal/model"
	"github.com/bank-system/teller/internal/payment"
)

var (
	// ErrBusy refuses a second network operation while one is in flight.
	ErrBusy = errors.New("another operation is in progress")

	ErrNotLoggedIn     = errors.New("not logged in")
	ErrWrongScreen     = errors.New("action not available on this screen")
	ErrAlreadyLoggedIn = errors.New("already logged in")
)

// AccountFetcher is the gateway slice the controller needs for login.
type AccountFetcher interface {
	FetchAccount(ctx context.Context, accountNumber string) (*model.AccountSnapshot, error)
}

// PaymentSubmitter is the submitter slice the controller needs.
type PaymentSubmitter interface {
	Submit(ctx context.Context, sender *model.AccountSnapshot, recipientID, amountText string) (*payment.Result, error)
}

type Controller struct {
	gateway  AccountFetcher
	payments PaymentSubmitter
	session  Session
}

func NewController(gateway AccountFetcher, payments PaymentSubmitter) *Controller {
	return &Controller{
		gateway:  gateway,
		payments: payments,
		session:  Session{Screen: ScreenLoggedOut},
	}
}

// Session returns a copy of the current state for rendering. Mutating the
// copy has no effect on the controller.
func (c *Controller) Session() Session {
	return c.session
}

// Login fetches the account for accountNumber and, on success, moves to
// the dashboard. On failure the session stays logged out and the failure
// is surfaced through StatusMessage; Login itself returns an error only
// when the operation was refused outright (busy, or already logged in).
func (c *Controller) Login(ctx context.Context, accountNumber string) error {
	if c.session.Busy {
		return ErrBusy
	}
	if c.session.Screen != ScreenLoggedOut {
		return ErrAlreadyLoggedIn
	}

	c.session.Busy = true
	c.session.StatusMessage = ""
	defer func() { c.session.Busy = false }()

	account, err := c.gateway.FetchAccount(ctx, accountNumber)
	if err != nil {
		c.session.StatusMessage = fmt.Sprintf("Login failed: %s.", api.Message(err))
		c.session.Account = nil
		return nil
	}

	c.session.Account = account
	c.session.Screen = ScreenDashboard
	return nil
}

// Logout discards the session and returns to the login screen. Allowed
// from Dashboard and Payment; a no-op error when already logged out.
func (c *Controller) Logout() error {
	if c.session.Busy {
		return ErrBusy
	}
	if c.session.Screen == ScreenLoggedOut {
		return ErrNotLoggedIn
	}

	c.session = Session{Screen: ScreenLoggedOut}
	return nil
}

// NavigateToPayment moves Dashboard -> Payment. No network call, so it is
// allowed even while an operation is in flight.
func (c *Controller) NavigateToPayment() error {
	if c.session.Screen != ScreenDashboard {
		return ErrWrongScreen
	}
	c.session.Screen = ScreenPayment
	return nil
}

// NavigateBack moves Payment -> Dashboard. No network call; an in-flight
// payment is not cancelled by leaving the screen.
func (c *Controller) NavigateBack() error {
	if c.session.Screen != ScreenPayment {
		return ErrWrongScreen
	}
	c.session.Screen = ScreenDashboard
	return nil
}

// SubmitPayment runs one submission attempt from the payment screen. The
// screen never auto-advances: on success the user sees the confirmation
// and refreshed balance where they are, and leaves explicitly. Outcomes
// land in StatusMessage; the returned error is only for refused actions.
func (c *Controller) SubmitPayment(ctx context.Context, recipientID, amountText string) error {
	if c.session.Busy {
		return ErrBusy
	}
	if c.session.Screen != ScreenPayment {
		return ErrWrongScreen
	}

	c.session.Busy = true
	c.session.StatusMessage = ""
	defer func() { c.session.Busy = false }()

	result, err := c.payments.Submit(ctx, c.session.Account, recipientID, amountText)
	if err != nil {
		c.session.StatusMessage = failureMessage(err)
		return nil
	}

	if result.RefreshErr != nil {
		// Payment went through, only the balance refresh failed. The
		// message must not read as a payment failure.
		c.session.StatusMessage = fmt.Sprintf(
			"%s Balance refresh failed (%s); shown balance may be stale.",
			result.Message, api.Message(result.RefreshErr))
		return nil
	}

	c.session.Account = result.Snapshot
	c.session.StatusMessage = result.Message
	return nil
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, payment.ErrInvalidAmount):
		return "Please enter a valid positive amount."
	case errors.Is(err, payment.ErrNoSenderAccount):
		return "Error: Sender account not found."
	default:
		return fmt.Sprintf("Payment failed: %s", api.Message(err))
	}
}
