package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptAccountNumber collects the account number on the login screen.
// A blank entry means the user wants to quit the session loop.
func PromptAccountNumber() (string, error) {
	var accountNumber string

	err := huh.NewInput().
		Title("Enter your Account Number to log in:").
		Description("e.g. ACC-001-A — leave blank to quit").
		Placeholder("ACC-001-A").
		Value(&accountNumber).
		Run()

	if err != nil {
		return "", err
	}

	return strings.TrimSpace(accountNumber), nil
}
