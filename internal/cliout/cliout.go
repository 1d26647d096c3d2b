// Package cliout formats the status and error lines the commands print.
package cliout

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrintError writes "Error: <err>" with a red prefix.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("Error:"), err)
}

// PrintStatus prints a status line with a colored symbol.
func PrintStatus(w io.Writer, symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	fmt.Fprintf(w, "%s %s\n", c.Sprint(symbol), message)
}

// PrintSuccess prints a green check mark followed by message.
func PrintSuccess(w io.Writer, message string) {
	PrintStatus(w, "✓", message, color.FgGreen)
}
