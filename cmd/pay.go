package cmd

import (
	"context"
	"fmt"

	"github.com/bank-system/teller/internal/app"
	"github.com/bank-system/teller/internal/session"
	"github.com/bank-system/teller/internal/ui/views"
	"github.com/bank-system/teller/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type payFlags struct {
	From   string
	To     string
	Amount string
}

type payRunner struct {
	app   *app.App
	flags *payFlags
}

func NewPayCmd(application *app.App) *cobra.Command {
	flags := &payFlags{}

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Send a one-shot payment",
		Long: `Send a payment without entering the interactive session.

The sender account is fetched first (same as logging in), then the payment
is submitted and the sender's refreshed balance is shown.

Example:
  teller pay --from ACC-001-A --to ACC-002-B --amount 50.00`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &payRunner{
				app:   application,
				flags: flags,
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.From, "from", "f", "", "Sender account number")
	cmd.Flags().StringVarP(&flags.To, "to", "t", "", "Recipient account ID")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount to send (e.g., 50 or 50.00)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

// Run drives the same state machine as the interactive session: log in,
// move to the payment screen, submit, report.
func (r *payRunner) Run(ctx context.Context) error {
	if err := validation.ValidateAccountNumber(r.flags.From); err != nil {
		return fmt.Errorf("invalid --from: %w", err)
	}
	if err := validation.ValidateAccountNumber(r.flags.To); err != nil {
		return fmt.Errorf("invalid --to: %w", err)
	}

	ctrl := r.app.Controller

	if err := ctrl.Login(ctx, r.flags.From); err != nil {
		return err
	}

	sess := ctrl.Session()
	if sess.Screen != session.ScreenDashboard {
		return fmt.Errorf("%s", sess.StatusMessage)
	}

	if err := ctrl.NavigateToPayment(); err != nil {
		return err
	}
	if err := ctrl.SubmitPayment(ctx, r.flags.To, r.flags.Amount); err != nil {
		return err
	}

	sess = ctrl.Session()
	views.RenderStatusBanner(sess.StatusMessage)

	if sess.Account != nil {
		pterm.Printf("Balance for %s: %.2f %s\n",
			sess.Account.AccountNumber, sess.Account.Balance, r.app.Config.Defaults.Currency)
	}

	return nil
}
