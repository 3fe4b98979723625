package session

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/bank-system/teller/internal/api"
	"github.com/bank-system/teller/internal/model"
	"github.com/bank-system/teller/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGateway struct {
	calls    int
	snapshot *model.AccountSnapshot
	err      error

	// onFetch runs mid-operation, while the controller is busy.
	onFetch func()
}

func (s *stubGateway) FetchAccount(_ context.Context, accountNumber string) (*model.AccountSnapshot, error) {
	s.calls++
	if s.onFetch != nil {
		s.onFetch()
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.snapshot, nil
}

type stubSubmitter struct {
	calls  int
	result *payment.Result
	err    error
}

func (s *stubSubmitter) Submit(_ context.Context, _ *model.AccountSnapshot, _, _ string) (*payment.Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func alice() *model.AccountSnapshot {
	return &model.AccountSnapshot{
		AccountNumber: "ACC-001-A",
		HolderName:    "Alice",
		Balance:       100.0,
		Transactions:  []model.Transaction{},
	}
}

func loggedIn(t *testing.T, gw *stubGateway, sub *stubSubmitter) *Controller {
	t.Helper()
	ctrl := NewController(gw, sub)
	require.NoError(t, ctrl.Login(context.Background(), "ACC-001-A"))
	require.Equal(t, ScreenDashboard, ctrl.Session().Screen)
	return ctrl
}

func TestLogin_Success(t *testing.T) {
	ctrl := NewController(&stubGateway{snapshot: alice()}, &stubSubmitter{})

	err := ctrl.Login(context.Background(), "ACC-001-A")

	require.NoError(t, err)
	sess := ctrl.Session()
	assert.Equal(t, ScreenDashboard, sess.Screen)
	require.NotNil(t, sess.Account)
	assert.Equal(t, 100.0, sess.Account.Balance)
	assert.Equal(t, "Alice", sess.Account.HolderName)
	assert.Empty(t, sess.StatusMessage)
	assert.False(t, sess.Busy)
}

func TestLogin_Failure_StaysLoggedOut(t *testing.T) {
	gw := &stubGateway{err: &api.APIError{StatusCode: http.StatusNotFound, Message: "not found"}}
	ctrl := NewController(gw, &stubSubmitter{})

	err := ctrl.Login(context.Background(), "ACC-404")

	require.NoError(t, err, "a failed login is an outcome, not a refused action")
	sess := ctrl.Session()
	assert.Equal(t, ScreenLoggedOut, sess.Screen)
	assert.Nil(t, sess.Account)
	assert.Equal(t, "Login failed: not found.", sess.StatusMessage)
}

func TestLogin_WhileLoggedIn_Refused(t *testing.T) {
	ctrl := loggedIn(t, &stubGateway{snapshot: alice()}, &stubSubmitter{})

	assert.ErrorIs(t, ctrl.Login(context.Background(), "ACC-002-B"), ErrAlreadyLoggedIn)
}

func TestBusyGate_RefusesReentrantOperations(t *testing.T) {
	gw := &stubGateway{snapshot: alice()}
	ctrl := NewController(gw, &stubSubmitter{})

	// While the login fetch is in flight, every network-touching action
	// must be refused; screen navigation is not attempted here because
	// there is no screen to navigate from yet.
	gw.onFetch = func() {
		assert.True(t, ctrl.Session().Busy)
		assert.ErrorIs(t, ctrl.Login(context.Background(), "ACC-002-B"), ErrBusy)
		assert.ErrorIs(t, ctrl.Logout(), ErrBusy)
		assert.ErrorIs(t, ctrl.SubmitPayment(context.Background(), "ACC-002-B", "1"), ErrBusy)
	}

	require.NoError(t, ctrl.Login(context.Background(), "ACC-001-A"))
	assert.Equal(t, 1, gw.calls)
	assert.False(t, ctrl.Session().Busy)
}

func TestNavigation_NoNetworkCalls(t *testing.T) {
	gw := &stubGateway{snapshot: alice()}
	ctrl := loggedIn(t, gw, &stubSubmitter{})
	callsAfterLogin := gw.calls

	require.NoError(t, ctrl.NavigateToPayment())
	assert.Equal(t, ScreenPayment, ctrl.Session().Screen)

	require.NoError(t, ctrl.NavigateBack())
	assert.Equal(t, ScreenDashboard, ctrl.Session().Screen)

	assert.Equal(t, callsAfterLogin, gw.calls, "navigation must not touch the network")
}

func TestNavigation_WrongScreen(t *testing.T) {
	ctrl := NewController(&stubGateway{}, &stubSubmitter{})

	assert.ErrorIs(t, ctrl.NavigateToPayment(), ErrWrongScreen)
	assert.ErrorIs(t, ctrl.NavigateBack(), ErrWrongScreen)
}

func TestLogout_ResetsSession(t *testing.T) {
	ctrl := loggedIn(t, &stubGateway{snapshot: alice()}, &stubSubmitter{})
	require.NoError(t, ctrl.NavigateToPayment())

	require.NoError(t, ctrl.Logout())

	sess := ctrl.Session()
	assert.Equal(t, ScreenLoggedOut, sess.Screen)
	assert.Nil(t, sess.Account)
	assert.Empty(t, sess.StatusMessage)
	assert.False(t, sess.Busy)
}

func TestLogout_WhenLoggedOut(t *testing.T) {
	ctrl := NewController(&stubGateway{}, &stubSubmitter{})

	assert.ErrorIs(t, ctrl.Logout(), ErrNotLoggedIn)
}

func TestSubmitPayment_Success_StaysOnPaymentScreen(t *testing.T) {
	refreshed := alice()
	refreshed.Balance = 50.0

	sub := &stubSubmitter{result: &payment.Result{Message: "Payment successful!", Snapshot: refreshed}}
	ctrl := loggedIn(t, &stubGateway{snapshot: alice()}, sub)
	require.NoError(t, ctrl.NavigateToPayment())

	require.NoError(t, ctrl.SubmitPayment(context.Background(), "ACC-002-B", "50.00"))

	sess := ctrl.Session()
	assert.Equal(t, ScreenPayment, sess.Screen, "success must not auto-advance to the dashboard")
	require.NotNil(t, sess.Account)
	assert.Equal(t, 50.0, sess.Account.Balance, "snapshot replaced with the refreshed one")
	assert.Equal(t, "Payment successful!", sess.StatusMessage)
}

func TestSubmitPayment_InvalidAmount_SnapshotUntouched(t *testing.T) {
	sub := &stubSubmitter{err: fmt.Errorf("%w: -5", payment.ErrInvalidAmount)}
	ctrl := loggedIn(t, &stubGateway{snapshot: alice()}, sub)
	require.NoError(t, ctrl.NavigateToPayment())

	require.NoError(t, ctrl.SubmitPayment(context.Background(), "ACC-002-B", "-5"))

	sess := ctrl.Session()
	assert.Equal(t, "Please enter a valid positive amount.", sess.StatusMessage)
	assert.Equal(t, 100.0, sess.Account.Balance)
	assert.Equal(t, ScreenPayment, sess.Screen)
}

func TestSubmitPayment_NoSender_DefensiveMessage(t *testing.T) {
	sub := &stubSubmitter{err: payment.ErrNoSenderAccount}
	ctrl := loggedIn(t, &stubGateway{snapshot: alice()}, sub)
	require.NoError(t, ctrl.NavigateToPayment())

	require.NoError(t, ctrl.SubmitPayment(context.Background(), "ACC-002-B", "50.00"))

	assert.Equal(t, "Error: Sender account not found.", ctrl.Session().StatusMessage)
}

func TestSubmitPayment_TransportFailure(t *testing.T) {
	sub := &stubSubmitter{err: &api.APIError{StatusCode: 422, Message: "insufficient funds"}}
	ctrl := loggedIn(t, &stubGateway{snapshot: alice()}, sub)
	require.NoError(t, ctrl.NavigateToPayment())

	require.NoError(t, ctrl.SubmitPayment(context.Background(), "ACC-002-B", "500.00"))

	sess := ctrl.Session()
	assert.Equal(t, "Payment failed: insufficient funds", sess.StatusMessage)
	assert.Equal(t, 100.0, sess.Account.Balance, "failed payment leaves the snapshot untouched")
}

func TestSubmitPayment_RefreshFailure_NotAFullFailure(t *testing.T) {
	sub := &stubSubmitter{result: &payment.Result{
		Message:    "Payment successful!",
		RefreshErr: &api.APIError{StatusCode: 503, Message: "account service down"},
	}}
	ctrl := loggedIn(t, &stubGateway{snapshot: alice()}, sub)
	require.NoError(t, ctrl.NavigateToPayment())

	require.NoError(t, ctrl.SubmitPayment(context.Background(), "ACC-002-B", "50.00"))

	sess := ctrl.Session()
	assert.Contains(t, sess.StatusMessage, "Payment successful!")
	assert.Contains(t, sess.StatusMessage, "refresh failed")
	assert.NotContains(t, sess.StatusMessage, "Payment failed")
	assert.Equal(t, 100.0, sess.Account.Balance, "stale snapshot kept when refresh fails")
}

func TestSubmitPayment_WrongScreen(t *testing.T) {
	ctrl := loggedIn(t, &stubGateway{snapshot: alice()}, &stubSubmitter{})

	// Still on the dashboard; submission belongs to the payment screen.
	assert.ErrorIs(t, ctrl.SubmitPayment(context.Background(), "ACC-002-B", "50.00"), ErrWrongScreen)
}

func TestStatusMessage_LatestOutcomeOnly(t *testing.T) {
	refreshed := alice()
	refreshed.Balance = 50.0

	sub := &stubSubmitter{err: &api.APIError{StatusCode: 500, Message: "boom"}}
	ctrl := loggedIn(t, &stubGateway{snapshot: alice()}, sub)
	require.NoError(t, ctrl.NavigateToPayment())

	require.NoError(t, ctrl.SubmitPayment(context.Background(), "ACC-002-B", "50.00"))
	assert.Equal(t, "Payment failed: boom", ctrl.Session().StatusMessage)

	sub.err = nil
	sub.result = &payment.Result{Message: "Payment successful!", Snapshot: refreshed}

	require.NoError(t, ctrl.SubmitPayment(context.Background(), "ACC-002-B", "50.00"))
	assert.Equal(t, "Payment successful!", ctrl.Session().StatusMessage, "banner shows only the latest outcome")
}

// End-to-end shape of the spec's scenario: login, pay 50, balance drops to
// 50, screen stays Payment. Uses the real submitter with stub collaborators.
func TestScenario_PaymentFlowWithRealSubmitter(t *testing.T) {
	refreshed := alice()
	refreshed.Balance = 50.0

	transport := &scenarioTransport{message: "Payment successful!"}
	gw := &stubGateway{snapshot: alice()}
	submitter := payment.NewSubmitter(transport, &stubGateway{snapshot: refreshed}, "EUR")

	ctrl := NewController(gw, submitter)
	require.NoError(t, ctrl.Login(context.Background(), "ACC-001-A"))
	require.NoError(t, ctrl.NavigateToPayment())
	require.NoError(t, ctrl.SubmitPayment(context.Background(), "ACC-002-B", "50.00"))

	sess := ctrl.Session()
	assert.Equal(t, ScreenPayment, sess.Screen)
	assert.Equal(t, 50.0, sess.Account.Balance)
	assert.Equal(t, "Payment successful!", sess.StatusMessage)
	assert.Equal(t, 1, transport.calls)
	assert.Equal(t, "ACC-001-A", transport.lastSender)
}

type scenarioTransport struct {
	calls      int
	lastSender string
	message    string
}

func (s *scenarioTransport) InitiatePayment(_ context.Context, req api.PaymentRequest) (*api.PaymentResponse, error) {
	s.calls++
	s.lastSender = req.SenderAccountID
	return &api.PaymentResponse{Message: s.message}, nil
}
