// Package ui - Terminal user interface
// Line-oriented output for the interactive payroll session.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// Colors for terminal output
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Red   = "\033[31m"
	Green = "\033[32m"
	Cyan  = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out       io.Writer
	noColor   bool
	ruleWidth int
	currency  string
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:       out,
		noColor:   noColor,
		ruleWidth: 60,
		currency:  "$",
	}
}

// SetRuleWidth sets the width of the rules drawn around blocks
func (w *Writer) SetRuleWidth(width int) {
	if width > 0 {
		w.ruleWidth = width
	}
}

// SetCurrency sets the symbol placed before monetary amounts
func (w *Writer) SetCurrency(symbol string) {
	w.currency = symbol
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Print writes formatted text without a newline
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Prompt writes a prompt and leaves the cursor on the same line
func (w *Writer) Prompt(text string) {
	fmt.Fprint(w.out, text)
}

// Diagnostic prints a one-line validation message
func (w *Writer) Diagnostic(msg string) {
	w.Println("%s", w.color(Red, msg))
}

// Rule prints a horizontal rule of the configured width
func (w *Writer) Rule(ch string) {
	w.Println("%s", strings.Repeat(ch, w.ruleWidth))
}

// Money formats an amount with the currency symbol and two decimals
func (w *Writer) Money(amount decimal.Decimal) string {
	return w.currency + amount.StringFixed(2)
}

// Banner prints the startup line followed by a blank line
func (w *Writer) Banner() {
	w.Println("%s", w.color(Bold+Cyan, "Simple Payroll Processor (type End to request quit at any prompt)"))
	w.Println("")
}
