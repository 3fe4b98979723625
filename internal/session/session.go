package session

import "github.com/bank-system/teller/internal/model"

// Screen is one of the three mutually exclusive UI states.
type Screen int

const (
	ScreenLoggedOut Screen = iota
	ScreenDashboard
	ScreenPayment
)

func (s Screen) String() string {
	switch s {
	case ScreenLoggedOut:
		return "LoggedOut"
	case ScreenDashboard:
		return "Dashboard"
	case ScreenPayment:
		return "Payment"
	default:
		return "Unknown"
	}
}

// Session is the controller's whole state. Account is non-nil exactly when
// Screen is Dashboard or Payment. StatusMessage holds the outcome of the
// most recent operation only; each new operation replaces it.
type Session struct {
	Screen        Screen
	Account       *model.AccountSnapshot
	StatusMessage string
	Busy          bool
}
