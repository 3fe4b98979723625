package views

import (
	"github.com/bank-system/teller/internal/model"
	"github.com/bank-system/teller/internal/utils"
	"github.com/pterm/pterm"
)

// RenderPaymentScreen shows the payment header with the sender's current
// balance so the user knows what is available before confirming.
func RenderPaymentScreen(account *model.AccountSnapshot, currency string) {
	pterm.DefaultSection.Println("Make a Payment")

	pterm.Printf("From:            %s (%s)\n", account.HolderName, account.AccountNumber)
	pterm.Printf("Current Balance: %s\n\n", pterm.Green(utils.FormatAmount(account.Balance, currency)))
}
