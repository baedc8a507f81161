package folio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quantfold/folio/date"
	"github.com/shopspring/decimal"
)

// Investor is the identity record a report is written for. It has no
// lifecycle of its own: holdings are implicitly associated with the single
// investor of the run.
type Investor struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Phone   string `yaml:"phone"`
}

// Holding is the capability set shared by the two holding kinds.
// Report writers and filters consume these accessors only.
type Holding interface {
	Earnings() Money
	PercentYield() Percent
	YearlyReturnOn(on date.Date) Percent
}

// Investment is a single purchased equity position. Instances are built
// once by a constructor and never mutated.
type Investment struct {
	PurchaseID    string
	Symbol        string
	Quantity      int64
	PurchasePrice decimal.Decimal
	CurrentPrice  decimal.Decimal
	PurchaseDate  date.Date
}

// NewInvestment builds an Investment from the raw string fields of an input
// record, coercing and validating each one. The quantity must be a whole
// number of shares and the purchase price must be a positive decimal (it is
// a divisor in the yield metrics).
func NewInvestment(purchaseID, symbol, quantity, purchasePrice, currentPrice, purchaseDate string) (Investment, error) {
	qty, err := strconv.ParseInt(strings.TrimSpace(quantity), 10, 64)
	if err != nil {
		return Investment{}, fmt.Errorf("invalid quantity %q: %w", quantity, err)
	}
	pp, err := decimal.NewFromString(strings.TrimSpace(purchasePrice))
	if err != nil {
		return Investment{}, fmt.Errorf("invalid purchase price %q: %w", purchasePrice, err)
	}
	if pp.Sign() <= 0 {
		return Investment{}, fmt.Errorf("purchase price %q must be positive", purchasePrice)
	}
	cp, err := decimal.NewFromString(strings.TrimSpace(currentPrice))
	if err != nil {
		return Investment{}, fmt.Errorf("invalid current price %q: %w", currentPrice, err)
	}
	on, err := date.Parse(strings.TrimSpace(purchaseDate))
	if err != nil {
		return Investment{}, fmt.Errorf("invalid purchase date: %w", err)
	}
	return Investment{
		PurchaseID:    strings.TrimSpace(purchaseID),
		Symbol:        strings.TrimSpace(symbol),
		Quantity:      qty,
		PurchasePrice: pp,
		CurrentPrice:  cp,
		PurchaseDate:  on,
	}, nil
}

// Earnings returns the capital gain of the position.
func (v Investment) Earnings() Money {
	return Earnings(v.CurrentPrice, v.PurchasePrice, v.Quantity)
}

// PercentYield returns the price appreciation relative to the purchase price.
// The constructor invariant guarantees a nonzero divisor; a holding built
// around the invariant faults here rather than returning a coerced zero.
func (v Investment) PercentYield() Percent {
	p, err := PercentageYield(v.CurrentPrice, v.PurchasePrice)
	if err != nil {
		panic(fmt.Sprintf("holding %s: %v", v.PurchaseID, err))
	}
	return p
}

// YearlyReturnOn returns the annualized return evaluated at the given date.
func (v Investment) YearlyReturnOn(on date.Date) Percent {
	p, err := YearlyReturn(v.CurrentPrice, v.PurchasePrice, v.PurchaseDate, on)
	if err != nil {
		panic(fmt.Sprintf("holding %s: %v", v.PurchaseID, err))
	}
	return p
}

// YearlyReturn returns the annualized return evaluated today.
func (v Investment) YearlyReturn() Percent { return v.YearlyReturnOn(date.Today()) }

// Bond is a fixed-income holding. It shares all the base fields and
// overrides only Earnings: percentage yield and yearly return stay
// price-based, the coupon and yield rate are not folded into them.
type Bond struct {
	Investment
	Coupon    decimal.Decimal
	YieldRate decimal.Decimal // fraction, e.g. 0.0135 for "1.35%"
}

// NewBond builds a Bond from the raw string fields of an input record.
// The yield rate is given as a percentage string such as "1.35%"; a bare
// number is treated the same way and divided by 100.
func NewBond(purchaseID, symbol, quantity, purchasePrice, currentPrice, coupon, yieldRate, purchaseDate string) (Bond, error) {
	base, err := NewInvestment(purchaseID, symbol, quantity, purchasePrice, currentPrice, purchaseDate)
	if err != nil {
		return Bond{}, err
	}
	cpn, err := decimal.NewFromString(strings.TrimSpace(coupon))
	if err != nil {
		return Bond{}, fmt.Errorf("invalid coupon %q: %w", coupon, err)
	}
	rate, err := parseYieldRate(yieldRate)
	if err != nil {
		return Bond{}, err
	}
	return Bond{Investment: base, Coupon: cpn, YieldRate: rate}, nil
}

// parseYieldRate converts a percentage string to a fraction: a trailing "%"
// is stripped if present and the number is divided by 100. The input is
// always read as a percentage, so a caller passing an already-fractional
// bare number gets it divided a second time.
func parseYieldRate(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(s), "%")
	rate, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid yield rate %q: %w", s, err)
	}
	return rate.Div(decimal.NewFromInt(100)), nil
}

// Earnings returns the capital gain plus the yield-based income term
// quantity * purchase price * yield rate.
func (b Bond) Earnings() Money {
	income := decimal.NewFromInt(b.Quantity).Mul(b.PurchasePrice).Mul(b.YieldRate)
	return b.Investment.Earnings().Add(M(income))
}
