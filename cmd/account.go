package cmd

import (
	"context"
	"fmt"

	"github.com/bank-system/teller/internal/app"
	"github.com/bank-system/teller/internal/ui/views"
	"github.com/spf13/cobra"
)

type accountRunner struct {
	app           *app.App
	accountNumber string
}

func NewAccountCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "account <account-number>",
		Short: "Show balance and transactions for an account",
		Long: `Fetch and display the snapshot for one account: holder name,
balance and recent transactions, exactly as the account service reports them.

Example:
  teller account ACC-001-A`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &accountRunner{
				app:           application,
				accountNumber: args[0],
			}
			return runner.Run(cmd.Context())
		},
	}
}

func (r *accountRunner) Run(ctx context.Context) error {
	account, err := r.app.Gateway.FetchAccount(ctx, r.accountNumber)
	if err != nil {
		return fmt.Errorf("failed to fetch account: %w", err)
	}

	view := views.NewDashboardView(r.app.Config.Defaults.Currency)
	return view.Render(account)
}
