package utils

import (
	"fmt"
	"math"

	"github.com/bank-system/teller/internal/model"
)

func FormatAmount(amount float64, currency string) string {
	return fmt.Sprintf("%.2f %s", amount, currency)
}

// FormatSignedAmount renders a history line amount. The displayed sign
// comes from the transaction kind (debits negative), the magnitude from
// the amount; neither field is rewritten from the other.
func FormatSignedAmount(tx model.Transaction, currency string) string {
	sign := "+"
	if tx.Kind == model.KindDebit {
		sign = "-"
	}
	return fmt.Sprintf("%s%.2f %s", sign, math.Abs(tx.Amount), currency)
}
