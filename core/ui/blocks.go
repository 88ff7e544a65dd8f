package ui

import "payroll/core/payroll"

// Cause says how a session reached its end
type Cause int

const (
	CauseQuit        Cause = iota // operator confirmed End
	CauseInterrupted              // abort signal from the environment
	CauseInputClosed              // stdin reached EOF
)

// String returns the cause name used in logs
func (c Cause) String() string {
	switch c {
	case CauseQuit:
		return "quit"
	case CauseInterrupted:
		return "interrupted"
	case CauseInputClosed:
		return "input_closed"
	default:
		return "unknown"
	}
}

// Notice prints the line that explains why the session is ending
func (w *Writer) Notice(c Cause) {
	switch c {
	case CauseQuit:
		w.Println("\nQuit confirmed by user. Showing totals so far.")
	case CauseInterrupted:
		w.Println("\nInterrupted by user. Showing totals so far.")
	default:
		w.Println("\nInput closed. Showing totals so far.")
	}
}

// Employee prints the per-employee block
func (w *Writer) Employee(e payroll.Employee, p payroll.Pay) {
	w.Rule("-")
	w.Println("Employee Name : %s", e.Name)
	w.Println("Total Hours   : %s", e.Hours.StringFixed(2))
	w.Println("Hourly Rate   : %s", w.Money(e.HourlyRate))
	w.Println("Gross Pay     : %s", w.Money(p.Gross))
	w.Println("Tax Rate      : %s%%", e.TaxPercent().StringFixed(2))
	w.Println("Income Tax    : %s", w.Money(p.Tax))
	w.Println("Net Pay       : %s", w.Money(p.Net))
	w.Rule("-")
}

// Totals prints the end-of-session summary
func (w *Writer) Totals(t payroll.Totals) {
	w.Println("")
	w.Rule("=")
	w.Println("%s", w.color(Bold, "Summary Totals"))
	w.Println("Total employees processed : %d", t.Count)
	w.Println("Total hours               : %s", t.Hours.StringFixed(2))
	w.Println("Total gross pay           : %s", w.Money(t.Gross))
	w.Println("Total tax                 : %s", w.Money(t.Tax))
	w.Println("Total net pay             : %s", w.Money(t.Net))
	w.Rule("=")
}
