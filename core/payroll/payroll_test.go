package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "want %s, got %s", want, got)
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name                 string
		hours, rate, taxRate string
		gross, tax, net      string
	}{
		{"standard week", "40", "20.00", "0.15", "800", "120", "680"},
		{"no tax", "10", "15", "0", "150", "0", "150"},
		{"full tax", "12.5", "30", "1", "375", "375", "0"},
		{"zero hours", "0", "25", "0.2", "0", "0", "0"},
		{"zero rate", "40", "0", "0.2", "0", "0", "0"},
		{"fractional", "37.25", "18.40", "0.0725", "685.4", "49.6915", "635.7085"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pay := Compute(d(tt.hours), d(tt.rate), d(tt.taxRate))
			assertDecimal(t, tt.gross, pay.Gross)
			assertDecimal(t, tt.tax, pay.Tax)
			assertDecimal(t, tt.net, pay.Net)
			assert.True(t, pay.Net.Add(pay.Tax).Equal(pay.Gross))
		})
	}
}

func TestPercentToFraction(t *testing.T) {
	assertDecimal(t, "0.15", PercentToFraction(d("15")))
	assertDecimal(t, "1", PercentToFraction(d("100")))
	assertDecimal(t, "0", PercentToFraction(d("0")))
	assertDecimal(t, "0.075", PercentToFraction(d("7.5")))
}

func TestEmployeePayAndPercent(t *testing.T) {
	e := Employee{Name: "Ada", Hours: d("40"), HourlyRate: d("20"), TaxRate: d("0.15")}
	pay := e.Pay()
	assertDecimal(t, "800", pay.Gross)
	assertDecimal(t, "15", e.TaxPercent())
}

func TestTotalsAccumulate(t *testing.T) {
	var totals Totals
	assert.Equal(t, 0, totals.Count)
	assertDecimal(t, "0", totals.Gross)

	employees := []Employee{
		{Name: "Ada", Hours: d("40"), HourlyRate: d("20"), TaxRate: d("0.15")},
		{Name: "Bob", Hours: d("10"), HourlyRate: d("15"), TaxRate: d("0")},
	}
	for _, e := range employees {
		totals.Add(e, e.Pay())
	}

	assert.Equal(t, 2, totals.Count)
	assertDecimal(t, "50", totals.Hours)
	assertDecimal(t, "950", totals.Gross)
	assertDecimal(t, "120", totals.Tax)
	assertDecimal(t, "830", totals.Net)
}

func TestTotalsOrderIndependent(t *testing.T) {
	employees := []Employee{
		{Name: "a", Hours: d("0.1"), HourlyRate: d("0.2"), TaxRate: d("0.3")},
		{Name: "b", Hours: d("7"), HourlyRate: d("13.37"), TaxRate: d("0.22")},
		{Name: "c", Hours: d("45.5"), HourlyRate: d("31.10"), TaxRate: d("0.4")},
	}

	var forward, backward Totals
	for i := range employees {
		forward.Add(employees[i], employees[i].Pay())
		j := len(employees) - 1 - i
		backward.Add(employees[j], employees[j].Pay())
	}

	assert.Equal(t, forward.Count, backward.Count)
	assert.True(t, forward.Hours.Equal(backward.Hours))
	assert.True(t, forward.Gross.Equal(backward.Gross))
	assert.True(t, forward.Tax.Equal(backward.Tax))
	assert.True(t, forward.Net.Equal(backward.Net))
}
