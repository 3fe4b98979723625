package prompts

import (
	"strings"

	"github.com/bank-system/teller/internal/validation"
	"github.com/charmbracelet/huh"
)

// PaymentInput is what the payment form collects. Recipient presence is
// enforced here, at the input boundary; amount text is validated inline
// but passed through as entered so the submitter owns the real parse.
type PaymentInput struct {
	RecipientID string
	AmountText  string
}

// PromptPayment runs the payment entry form.
func PromptPayment(currency string) (PaymentInput, error) {
	var input PaymentInput

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Recipient Account ID:").
				Placeholder("e.g., ACC-002-B").
				Validate(required("recipient account ID")).
				Value(&input.RecipientID),
			huh.NewInput().
				Title("Amount ("+currency+"):").
				Placeholder("e.g., 100.00").
				Validate(validation.ValidateAmount).
				Value(&input.AmountText),
		),
	)

	if err := form.Run(); err != nil {
		return PaymentInput{}, err
	}

	input.RecipientID = strings.TrimSpace(input.RecipientID)
	input.AmountText = strings.TrimSpace(input.AmountText)

	return input, nil
}
