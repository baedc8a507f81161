package folio

import (
	"errors"

	"github.com/quantfold/folio/date"
	"github.com/shopspring/decimal"
)

// ErrZeroPurchasePrice reports a yield computation against a zero purchase
// price. Holdings built through the constructors can never trigger it.
var ErrZeroPurchasePrice = errors.New("purchase price is zero")

// daysPerYear is the Julian year used to annualize returns.
const daysPerYear = 365.25

// Earnings returns the capital gain (or loss) of a position:
// (current - purchase) * quantity. Defined for a zero quantity.
func Earnings(current, purchase decimal.Decimal, quantity int64) Money {
	return M(current.Sub(purchase).Mul(decimal.NewFromInt(quantity)))
}

// PercentageYield returns the price appreciation as a percentage of the
// purchase price: (current - purchase) / purchase * 100.
func PercentageYield(current, purchase decimal.Decimal) (Percent, error) {
	if purchase.IsZero() {
		return 0, ErrZeroPurchasePrice
	}
	r := current.Sub(purchase).Div(purchase).Mul(decimal.NewFromInt(100))
	return Percent(r.InexactFloat64()), nil
}

// YearlyReturn annualizes the price appreciation over the exact holding
// duration, counted in days and divided by 365.25. A non-positive holding
// duration (purchase in the future, or purchased today) yields exactly 0
// rather than dividing by it.
func YearlyReturn(current, purchase decimal.Decimal, purchased, on date.Date) (Percent, error) {
	years := float64(purchased.DaysUntil(on)) / daysPerYear
	if years <= 0 {
		return 0, nil
	}
	if purchase.IsZero() {
		return 0, ErrZeroPurchasePrice
	}
	total := current.Sub(purchase).Div(purchase).InexactFloat64()
	return Percent(total / years * 100), nil
}
