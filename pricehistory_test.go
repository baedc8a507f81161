package folio

import (
	"strings"
	"testing"
	"time"

	"github.com/quantfold/folio/date"
)

func TestDecodePriceRecords(t *testing.T) {
	in := strings.NewReader(`[
		{"Symbol": "GOOGL", "Date": "1-Feb-17", "Close": 820.19},
		{"Symbol": "GOOGL", "Date": "2-Feb-17", "Close": "$818.26"},
		{"Symbol": "MSFT", "Date": "1-Feb-17", "Close": "63.58"}
	]`)
	records, skipped, err := DecodePriceRecords(in, "$")
	if err != nil {
		t.Fatalf("DecodePriceRecords() failed: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if want := date.New(2017, time.February, 1); records[0].Date != want {
		t.Errorf("records[0].Date = %s, want %s", records[0].Date, want)
	}
	if records[1].Close != 818.26 {
		t.Errorf("records[1].Close = %v, want 818.26 (dollar-prefixed string)", records[1].Close)
	}
}

func TestDecodePriceRecords_Envelope(t *testing.T) {
	in := strings.NewReader(`{"meta": {"source": "eod"}, "data": [
		{"Symbol": "GOOGL", "Date": "1-Feb-17", "Close": 820.19}
	]}`)
	records, _, err := DecodePriceRecords(in, "$.data")
	if err != nil {
		t.Fatalf("DecodePriceRecords() failed: %v", err)
	}
	if len(records) != 1 || records[0].Symbol != "GOOGL" {
		t.Fatalf("unexpected records: %+v", records)
	}

	if _, _, err := DecodePriceRecords(strings.NewReader(`{"data": 42}`), "$.data"); err == nil {
		t.Error("DecodePriceRecords on a non-array target succeeded, want error")
	}
}

func TestDecodePriceRecords_SkipsBadRecords(t *testing.T) {
	in := strings.NewReader(`[
		{"Symbol": "GOOGL", "Date": "1-Feb-17", "Close": 820.19},
		{"Date": "1-Feb-17", "Close": 10},
		{"Symbol": "MSFT", "Date": "2017-02-01", "Close": 10},
		{"Symbol": "MSFT", "Date": "1-Feb-17", "Close": "n/a"},
		"not an object"
	]`)
	records, skipped, err := DecodePriceRecords(in, "$")
	if err != nil {
		t.Fatalf("DecodePriceRecords() failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1", len(records))
	}
	if skipped != 4 {
		t.Errorf("skipped = %d, want 4", skipped)
	}
}

func TestPositionSeries(t *testing.T) {
	feb := func(day int) date.Date { return date.New(2017, time.February, day) }
	records := []PriceRecord{
		{Symbol: "GOOGL", Date: feb(3), Close: 100},
		{Symbol: "MSFT", Date: feb(1), Close: 60},
		{Symbol: "GOOGL", Date: feb(1), Close: 90},
		{Symbol: "AIG", Date: feb(1), Close: 50}, // not held
		{Symbol: "GOOGL", Date: feb(2), Close: 95},
	}
	positions := map[string]int64{"GOOGL": 10, "MSFT": 2}

	series := PositionSeries(records, positions)
	if len(series) != 2 {
		t.Fatalf("got %d series, want 2 (unheld symbols dropped)", len(series))
	}

	googl := series["GOOGL"]
	if len(googl) != 3 {
		t.Fatalf("got %d GOOGL points, want 3", len(googl))
	}
	// Sorted ascending by date regardless of input order, scaled by quantity.
	wantValues := []float64{900, 950, 1000}
	for i, want := range wantValues {
		if googl[i].Value != want {
			t.Errorf("GOOGL[%d].Value = %v, want %v", i, googl[i].Value, want)
		}
		if googl[i].Date != feb(i+1) {
			t.Errorf("GOOGL[%d].Date = %s, want %s", i, googl[i].Date, feb(i+1))
		}
	}
	if got := series["MSFT"][0].Value; got != 120 {
		t.Errorf("MSFT[0].Value = %v, want 120", got)
	}
}

func TestPositions(t *testing.T) {
	stocks, errs := ImportStocks(strings.NewReader(
		"GOOGL,125,772.88,941.53,8/1/2017\n" +
			"MSFT,85,56.60,73.04,8/1/2017\n"))
	if len(errs) != 0 {
		t.Fatalf("ImportStocks() errors: %v", errs)
	}
	got := Positions(stocks)
	if got["GOOGL"] != 125 || got["MSFT"] != 85 {
		t.Errorf("Positions() = %v", got)
	}
}
