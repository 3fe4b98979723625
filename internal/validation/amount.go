package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAmount parses user-entered amount text into a positive decimal.
// Rejects anything unparseable, non-positive, or non-finite.
func ParseAmount(amountText string) (float64, error) {
	text := strings.TrimSpace(amountText)
	if text == "" {
		return 0, fmt.Errorf("amount is required")
	}

	amount, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", amountText)
	}

	if math.IsNaN(amount) || amount <= 0 {
		return 0, fmt.Errorf("amount must be greater than zero")
	}

	if amount > 9223372036854775 {
		return 0, fmt.Errorf("amount too large")
	}

	return amount, nil
}

// ValidateAmount is the prompt-compatible form of ParseAmount.
func ValidateAmount(amountText string) error {
	_, err := ParseAmount(amountText)
	return err
}

// ValidateAccountNumber checks a user-entered account number.
func ValidateAccountNumber(accountNumber string) error {
	if strings.TrimSpace(accountNumber) == "" {
		return fmt.Errorf("account number can't be empty")
	}
	return nil
}

// ValidateCurrency validates a currency code format (ISO 4217 shape).
func ValidateCurrency(currency string) error {
	currency = strings.TrimSpace(strings.ToUpper(currency))

	if currency == "" {
		return nil // Empty is allowed (will use default)
	}

	if len(currency) != 3 {
		return fmt.Errorf("currency code must be 3 characters (e.g. EUR)")
	}

	for _, c := range currency {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("currency code must contain only letters")
		}
	}

	return nil
}
