// Package payroll - Pay arithmetic and session totals
// All amounts are decimals so that running sums stay exact.
package payroll

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Employee is one validated record. It lives for a single loop iteration.
type Employee struct {
	Name       string
	Hours      decimal.Decimal
	HourlyRate decimal.Decimal

	// TaxRate is a fraction in [0,1], not a percentage
	TaxRate decimal.Decimal
}

// Pay is derived from an Employee
type Pay struct {
	Gross decimal.Decimal
	Tax   decimal.Decimal
	Net   decimal.Decimal
}

// Compute derives gross, tax and net pay. Inputs are assumed validated:
// hours and rate non-negative, taxRate within [0,1].
func Compute(hours, rate, taxRate decimal.Decimal) Pay {
	gross := hours.Mul(rate)
	tax := gross.Mul(taxRate)
	return Pay{
		Gross: gross,
		Tax:   tax,
		Net:   gross.Sub(tax),
	}
}

// Pay computes the employee's pay
func (e Employee) Pay() Pay {
	return Compute(e.Hours, e.HourlyRate, e.TaxRate)
}

// TaxPercent returns the tax rate as a percentage for display
func (e Employee) TaxPercent() decimal.Decimal {
	return e.TaxRate.Mul(hundred)
}

// PercentToFraction converts an operator-entered percentage to a fraction
func PercentToFraction(pct decimal.Decimal) decimal.Decimal {
	return pct.Shift(-2)
}

// Totals accumulates across a session. The zero value is an empty session.
type Totals struct {
	Count int
	Hours decimal.Decimal
	Gross decimal.Decimal
	Tax   decimal.Decimal
	Net   decimal.Decimal
}

// Add folds one completed employee into the totals
func (t *Totals) Add(e Employee, p Pay) {
	t.Count++
	t.Hours = t.Hours.Add(e.Hours)
	t.Gross = t.Gross.Add(p.Gross)
	t.Tax = t.Tax.Add(p.Tax)
	t.Net = t.Net.Add(p.Net)
}
