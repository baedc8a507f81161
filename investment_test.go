package folio

import (
	"testing"
	"time"

	"github.com/quantfold/folio/date"
)

func TestNewInvestment(t *testing.T) {
	inv, err := NewInvestment("S1", "GOOGL", "125", "772.88", "941.53", "8/1/2017")
	if err != nil {
		t.Fatalf("NewInvestment() failed: %v", err)
	}
	if inv.PurchaseID != "S1" || inv.Symbol != "GOOGL" || inv.Quantity != 125 {
		t.Errorf("unexpected fields: %+v", inv)
	}
	if want := date.New(2017, time.August, 1); inv.PurchaseDate != want {
		t.Errorf("PurchaseDate = %s, want %s", inv.PurchaseDate, want)
	}
}

func TestNewInvestment_Invalid(t *testing.T) {
	testCases := []struct {
		name                      string
		qty, purchase, current, on string
	}{
		{"fractional quantity", "12.5", "100", "110", "8/1/2017"},
		{"non-numeric quantity", "many", "100", "110", "8/1/2017"},
		{"zero purchase price", "10", "0", "110", "8/1/2017"},
		{"negative purchase price", "10", "-5", "110", "8/1/2017"},
		{"bad purchase price", "10", "1O0", "110", "8/1/2017"},
		{"bad current price", "10", "100", "n/a", "8/1/2017"},
		{"bad date", "10", "100", "110", "2017-08-01x"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewInvestment("S1", "X", tc.qty, tc.purchase, tc.current, tc.on); err == nil {
				t.Errorf("NewInvestment(%q, %q, %q, %q) succeeded, want error", tc.qty, tc.purchase, tc.current, tc.on)
			}
		})
	}
}

func TestNewBond_YieldRate(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"percent suffix", "1.35%", "0.0135"},
		{"bare percentage", "1.35", "0.0135"},
		// A pre-divided fraction is still read as a percentage.
		{"fraction input", "0.0135", "0.000135"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := NewBond("B1", "GT2:GOV", "200", "100.02", "100.05", "1.38", tc.in, "8/1/2017")
			if err != nil {
				t.Fatalf("NewBond() failed: %v", err)
			}
			if !b.YieldRate.Equal(d(tc.want)) {
				t.Errorf("YieldRate(%q) = %s, want %s", tc.in, b.YieldRate, tc.want)
			}
		})
	}

	if _, err := NewBond("B1", "GT2:GOV", "200", "100.02", "100.05", "1.38", "high", "8/1/2017"); err == nil {
		t.Error("NewBond with non-numeric yield rate succeeded, want error")
	}
}

func TestBondEarnings(t *testing.T) {
	b, err := NewBond("B999", "GT2:GOV", "200", "100.02", "100.05", "1.38", "1.35%", "8/1/2017")
	if err != nil {
		t.Fatalf("NewBond() failed: %v", err)
	}
	// (100.05-100.02)*200 + 200*100.02*0.0135 = 6 + 270.054
	if want := M(d("276.054")); !b.Earnings().Equal(want) {
		t.Errorf("Bond.Earnings() = %s, want %s", b.Earnings(), want)
	}
}

func TestBondYieldMetricsStayPriceBased(t *testing.T) {
	// Only Earnings is overridden: yield and yearly return come from the
	// price pair alone, identical to a stock with the same prices.
	b, err := NewBond("B1", "GT2:GOV", "200", "100.00", "110.00", "1.38", "1.35%", "8/1/2017")
	if err != nil {
		t.Fatalf("NewBond() failed: %v", err)
	}
	if !b.PercentYield().Equal(10) {
		t.Errorf("Bond.PercentYield() = %s, want 10.00%%", b.PercentYield())
	}
	on := date.New(2021, time.August, 1)
	if got, want := b.YearlyReturnOn(on), b.Investment.YearlyReturnOn(on); got != want {
		t.Errorf("Bond.YearlyReturnOn() = %s, want the base %s", got, want)
	}

	// The interface dispatches to the override.
	var h Holding = b
	if !h.Earnings().Equal(b.Earnings()) {
		t.Error("Holding.Earnings() did not dispatch to the bond override")
	}
}
