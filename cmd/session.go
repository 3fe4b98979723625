package cmd

import (
	"context"
	"fmt"

	"github.com/bank-system/teller/internal/app"
	"github.com/bank-system/teller/internal/errhandler"
	"github.com/bank-system/teller/internal/session"
	"github.com/bank-system/teller/internal/ui"
	"github.com/bank-system/teller/internal/ui/prompts"
	"github.com/bank-system/teller/internal/ui/views"
	"github.com/pterm/pterm"
)

const (
	actionMakePayment  = "Make a Payment"
	actionLogout       = "Log out"
	actionQuit         = "Quit"
	actionEnterPayment = "Enter payment details"
	actionBack         = "Back to Dashboard"
)

// sessionRunner drives the interactive screen loop. Each iteration renders
// the status banner and the active screen, then routes the chosen action
// to a controller transition. The switch over screens is exhaustive; every
// state change goes through the controller.
type sessionRunner struct {
	app *app.App
}

func (r *sessionRunner) Run() error {
	ctx := context.Background()
	ctrl := r.app.Controller
	currency := r.app.Config.Defaults.Currency
	dashboard := views.NewDashboardView(currency)

	ui.PrintAppTitle("Welcome to Your Bank")

	for {
		sess := ctrl.Session()
		views.RenderStatusBanner(sess.StatusMessage)

		var (
			quit bool
			err  error
		)

		switch sess.Screen {
		case session.ScreenLoggedOut:
			quit, err = r.loginScreen(ctx, ctrl)
		case session.ScreenDashboard:
			quit, err = r.dashboardScreen(ctrl, dashboard, sess)
		case session.ScreenPayment:
			quit, err = r.paymentScreen(ctx, ctrl, sess, currency)
		}

		if err != nil {
			errhandler.HandleError(err)
			return nil
		}
		if quit {
			pterm.Info.Println("Goodbye!")
			return nil
		}

		printSeparator()
	}
}

func (r *sessionRunner) loginScreen(ctx context.Context, ctrl *session.Controller) (bool, error) {
	accountNumber, err := prompts.PromptAccountNumber()
	if err != nil {
		return false, err
	}
	if accountNumber == "" {
		return true, nil
	}

	spinner, _ := pterm.DefaultSpinner.Start("Logging in...")
	err = ctrl.Login(ctx, accountNumber)
	_ = spinner.Stop()

	return false, err
}

func (r *sessionRunner) dashboardScreen(ctrl *session.Controller, dashboard *views.DashboardView, sess session.Session) (bool, error) {
	if err := dashboard.Render(sess.Account); err != nil {
		return false, err
	}

	action, err := prompts.PromptSelect(
		"What would you like to do?",
		[]string{actionMakePayment, actionLogout, actionQuit},
		actionMakePayment,
	)
	if err != nil {
		return false, err
	}

	switch action {
	case actionMakePayment:
		return false, ctrl.NavigateToPayment()
	case actionLogout:
		return false, ctrl.Logout()
	default:
		return true, nil
	}
}

func (r *sessionRunner) paymentScreen(ctx context.Context, ctrl *session.Controller, sess session.Session, currency string) (bool, error) {
	views.RenderPaymentScreen(sess.Account, currency)

	action, err := prompts.PromptSelect(
		"Payment screen:",
		[]string{actionEnterPayment, actionBack},
		actionEnterPayment,
	)
	if err != nil {
		return false, err
	}

	if action == actionBack {
		return false, ctrl.NavigateBack()
	}

	input, err := prompts.PromptPayment(currency)
	if err != nil {
		return false, err
	}

	confirmed, err := prompts.PromptConfirm(
		fmt.Sprintf("Send %s %s to %s?", input.AmountText, currency, input.RecipientID),
		true,
	)
	if err != nil {
		return false, err
	}
	if !confirmed {
		return false, nil
	}

	spinner, _ := pterm.DefaultSpinner.Start("Processing payment...")
	err = ctrl.SubmitPayment(ctx, input.RecipientID, input.AmountText)
	_ = spinner.Stop()

	return false, err
}
