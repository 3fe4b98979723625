package views

import (
	"strings"

	"github.com/pterm/pterm"
)

// RenderStatusBanner shows the latest operation's outcome. The session
// stores only the message text, so severity is derived from its shape:
// the known failure wordings render red, a partial success (payment ok,
// refresh failed) renders yellow, everything else green.
func RenderStatusBanner(message string) {
	if message == "" {
		return
	}

	switch {
	case isFailure(message):
		pterm.Error.Println(message)
	case strings.Contains(message, "refresh failed"):
		pterm.Warning.Println(message)
	default:
		pterm.Success.Println(message)
	}
}

func isFailure(message string) bool {
	for _, prefix := range []string{"Login failed", "Payment failed", "Please enter", "Error:"} {
		if strings.HasPrefix(message, prefix) {
			return true
		}
	}
	return false
}
