package prompts

import (
	"errors"
	"strings"

	"github.com/bank-system/teller/internal/validation"
	"github.com/charmbracelet/huh"
)

func PromptInitCurrency(currDefault string) (string, error) {
	selection := currDefault

	err := huh.NewSelect[string]().
		Title("Welcome to Teller! First run — choose the payment currency:").
		Description("All payments are sent in this single configured currency").
		Options(
			huh.NewOption("EUR", "EUR"),
			huh.NewOption("USD", "USD"),
			huh.NewOption("GBP", "GBP"),
			huh.NewOption("CHF", "CHF"),
			huh.NewOption("Other", "Other"),
		).
		Value(&selection).
		Run()

	if err != nil {
		return "", err
	}

	finalCurrency := selection
	if selection == "Other" {
		var customInput string
		err := huh.NewInput().
			Title("Please enter the currency code:").
			Description("Please use the ISO 4217 standard 3-letter currency code.").
			Value(&customInput).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("currency code is required")
				}
				return validation.ValidateCurrency(s)
			}).
			Run()

		if err != nil {
			return "", err
		}

		finalCurrency = strings.ToUpper(strings.TrimSpace(customInput))
	}

	return finalCurrency, nil
}
