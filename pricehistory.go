package folio

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/quantfold/folio/date"
)

// PriceRecord is one external close-price observation for a symbol.
type PriceRecord struct {
	Symbol string
	Date   date.Date
	Close  float64
}

// PricePoint is a dated position value (close price times held quantity).
type PricePoint struct {
	Date  date.Date
	Value float64
}

// DecodePriceRecords reads a JSON document from r and extracts price
// records from the array located by the given JSONPath expression ("$" when
// the document is the array itself; feeds wrapping their records in an
// envelope use e.g. "$.data").
//
// Records with a missing symbol, an unparseable date or an unparseable
// close price are skipped individually; their count is returned so callers
// can report them without failing the read.
func DecodePriceRecords(r io.Reader, path string) (records []PriceRecord, skipped int, err error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, 0, fmt.Errorf("cannot parse price history JSON: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, 0, fmt.Errorf("cannot locate price records at %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, 0, fmt.Errorf("price records at %q: not an array, got %T", path, jval)
	}

	for _, je := range jlist {
		entry, ok := je.(map[string]any)
		if !ok {
			skipped++
			continue
		}
		sym, _ := entry["Symbol"].(string)
		if sym == "" {
			skipped++
			continue
		}
		day, ok := entry["Date"].(string)
		if !ok {
			skipped++
			continue
		}
		on, err := date.ParseMarket(day)
		if err != nil {
			skipped++
			continue
		}
		close, ok := asFloat(entry["Close"])
		if !ok {
			skipped++
			continue
		}
		records = append(records, PriceRecord{Symbol: sym, Date: on, Close: close})
	}
	return records, skipped, nil
}

// asFloat coerces the Close field, which some feeds emit as a number and
// others as a string, possibly with a leading currency sign.
func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimPrefix(strings.TrimSpace(x), "$"), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// PositionSeries multiplies each record's close price by the held quantity
// of its symbol, drops symbols that are not held, groups by symbol and
// sorts each series ascending by date regardless of input order.
func PositionSeries(records []PriceRecord, positions map[string]int64) map[string][]PricePoint {
	series := make(map[string][]PricePoint)
	for _, rec := range records {
		qty, held := positions[rec.Symbol]
		if !held {
			continue
		}
		series[rec.Symbol] = append(series[rec.Symbol], PricePoint{
			Date:  rec.Date,
			Value: rec.Close * float64(qty),
		})
	}
	for _, points := range series {
		sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	}
	return series
}

// Positions maps each stock's symbol to its held quantity.
func Positions(stocks []Investment) map[string]int64 {
	m := make(map[string]int64, len(stocks))
	for _, s := range stocks {
		m[s.Symbol] = s.Quantity
	}
	return m
}
