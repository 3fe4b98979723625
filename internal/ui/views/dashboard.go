package views

import (
	"github.com/bank-system/teller/internal/model"
	"github.com/bank-system/teller/internal/utils"
	"github.com/pterm/pterm"
)

type DashboardView struct {
	Currency string
}

func NewDashboardView(currency string) *DashboardView {
	return &DashboardView{Currency: currency}
}

// Render shows the account snapshot: holder, number, balance and the
// transaction history exactly as the account service ordered it.
func (v *DashboardView) Render(account *model.AccountSnapshot) error {
	pterm.DefaultSection.Printf("Welcome, %s!", account.HolderName)

	pterm.Printf("Account Number: %s\n", pterm.Bold.Sprint(account.AccountNumber))
	pterm.Printf("Balance:        %s\n\n", pterm.Green(utils.FormatAmount(account.Balance, v.Currency)))

	return v.renderTransactions(account.Transactions)
}

func (v *DashboardView) renderTransactions(transactions []model.Transaction) error {
	pterm.DefaultSection.WithLevel(2).Println("Recent Transactions")

	if len(transactions) == 0 {
		pterm.Info.Println("No transactions to display")
		return nil
	}

	tableData := pterm.TableData{
		{"Date", "Description", "Amount"},
	}

	for _, tx := range transactions {
		amount := utils.FormatSignedAmount(tx, v.Currency)

		var coloredAmount, coloredDescription string
		switch tx.Kind {
		case model.KindDebit:
			coloredAmount = pterm.Red(amount)
			coloredDescription = tx.Description
		case model.KindCredit:
			coloredAmount = pterm.Green(amount)
			coloredDescription = tx.Description
		default:
			coloredAmount = amount
			coloredDescription = tx.Description
		}

		tableData = append(tableData, []string{tx.Date, coloredDescription, coloredAmount})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(transactions))
	return nil
}
