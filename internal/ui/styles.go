package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

// PrintAppTitle renders the banner shown when the interactive session starts.
func PrintAppTitle(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	style.Printf(" %s   \n", text)
}
