package payment

import "errors"

var (
	// ErrInvalidAmount rejects unparseable or non-positive amounts before
	// any network call is made.
	ErrInvalidAmount = errors.New("invalid payment amount")

	// ErrNoSenderAccount flags a submission without a resolved sender.
	// Unreachable through the controller's state machine, but the submitter
	// is an independently testable unit and checks it anyway.
	ErrNoSenderAccount = errors.New("sender account not found")
)
