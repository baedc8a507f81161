package folio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in the portfolio's single currency (USD).
type Money struct {
	value decimal.Decimal
}

// M wraps a decimal amount as Money.
func M(value decimal.Decimal) Money { return Money{value: value} }

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, money.USD).Currency()
}

// Display returns the value formatted with its currency symbol and
// thousands separators, e.g. "$1,234.56".
func (m Money) Display() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// String returns the plain value rounded to 2 decimal places, e.g. "276.05".
func (m Money) String() string { return m.value.StringFixed(2) }

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal { return m.value }

// Float64 returns the amount as a float64, losing precision beyond what
// a float can carry.
func (m Money) Float64() float64 { return m.value.InexactFloat64() }

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money               { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value)} }
