package cmd

import "github.com/pterm/pterm"

// printSeparator prints a green separator line between screen renders to
// keep consecutive screens visually distinct.
func printSeparator() {
	pterm.Println(pterm.Green("----------------------------------------"))
}
