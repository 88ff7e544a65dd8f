package input

import (
	"math/big"

	"github.com/shopspring/decimal"

	"payroll/core/payroll"
	"payroll/internal/errors"
)

const (
	NamePrompt    = "Enter employee name (or type End to finish): "
	HoursPrompt   = "Enter total hours worked: "
	RatePrompt    = "Enter hourly rate: "
	TaxRatePrompt = "Enter income tax rate (percent, e.g. 15 for 15%): "
)

const (
	// MaxIntegerDigits bounds numeric input below 10^15
	MaxIntegerDigits = 15

	// MaxFractionDigits bounds the digits after the decimal point
	MaxFractionDigits = 20
)

var maxPercent = decimal.NewFromInt(100)

// numberRule holds the diagnostics of one numeric field, checked in order:
// blank, not a number, out of range.
type numberRule struct {
	blank   string
	invalid string
	bounds  string
	max     *decimal.Decimal
}

func (n numberRule) parse(text string) (decimal.Decimal, error) {
	if text == "" {
		return decimal.Zero, errors.Input(n.blank)
	}
	v, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, errors.Input(n.invalid).WithContext("input", text)
	}
	if v.IsZero() {
		return decimal.Zero, nil
	}
	if !representable(v) {
		return decimal.Zero, errors.Input(n.invalid).
			WithContext("input", text).
			WithContext("exponent", v.Exponent())
	}
	if v.IsNegative() || (n.max != nil && v.GreaterThan(*n.max)) {
		return decimal.Zero, errors.Input(n.bounds).WithContext("input", text)
	}
	return v, nil
}

// representable reports whether v fits the digit limits. It inspects the
// coefficient and exponent only, since comparing or rescaling a value with
// an extreme exponent allocates a power of ten of that size.
func representable(v decimal.Decimal) bool {
	exp := int64(v.Exponent())
	if exp < -MaxFractionDigits {
		return false
	}
	digits := int64(len(new(big.Int).Abs(v.Coefficient()).String()))
	return digits+exp <= MaxIntegerDigits
}

// Name accepts any non-blank text as given
func Name() Field[string] {
	return Field[string]{
		Name:   "name",
		Prompt: NamePrompt,
		Parse: func(text string) (string, error) {
			if text == "" {
				return "", errors.Input("Name cannot be blank.")
			}
			return text, nil
		},
	}
}

// Hours accepts a non-negative number
func Hours() Field[decimal.Decimal] {
	rule := numberRule{
		blank:   "Hours cannot be blank.",
		invalid: "Please enter a valid number for hours.",
		bounds:  "Hours must be zero or positive.",
	}
	return Field[decimal.Decimal]{Name: "hours", Prompt: HoursPrompt, Parse: rule.parse}
}

// HourlyRate accepts a non-negative number
func HourlyRate() Field[decimal.Decimal] {
	rule := numberRule{
		blank:   "Rate cannot be blank.",
		invalid: "Please enter a valid number for hourly rate.",
		bounds:  "Hourly rate must be zero or positive.",
	}
	return Field[decimal.Decimal]{Name: "hourly_rate", Prompt: RatePrompt, Parse: rule.parse}
}

// TaxRate accepts a percentage in [0,100] and yields it as a fraction
func TaxRate() Field[decimal.Decimal] {
	rule := numberRule{
		blank:   "Tax rate cannot be blank.",
		invalid: "Please enter a valid percentage for tax rate.",
		bounds:  "Tax rate must be between 0 and 100.",
		max:     &maxPercent,
	}
	return Field[decimal.Decimal]{
		Name:   "tax_rate",
		Prompt: TaxRatePrompt,
		Parse: func(text string) (decimal.Decimal, error) {
			pct, err := rule.parse(text)
			if err != nil {
				return decimal.Zero, err
			}
			return payroll.PercentToFraction(pct), nil
		},
	}
}
