package folio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/quantfold/folio/date"
)

// this file contains functions to read holding input files and to export
// computed metrics as CSV.
//
// Input files are line-oriented, comma-separated, with no header row:
//
//	stocks: symbol,quantity,purchase_price,current_price,purchase_date
//	bonds:  symbol,quantity,purchase_price,current_price,coupon,yield_rate,purchase_date
//
// Purchase identifiers are derived from the 1-based line number ("S3", "B2").

// LineError is a line-level failure recorded while reading an input file.
type LineError struct {
	Line int // 1-based line number, 0 when the file itself was unreadable
	Err  error
}

func (e LineError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e LineError) Unwrap() error { return e.Err }

// linePolicy selects how a reader reacts to a line with the wrong number of
// fields. The two input kinds deliberately differ: stock files abort on the
// first malformed line, bond files skip such lines silently.
type linePolicy int

const (
	failFast     linePolicy = iota // any malformed line stops the whole read
	skipBadCount                   // wrong field count is skipped, other errors stop the read
)

const (
	stockFields = 5
	bondFields  = 7
)

// ImportStocks reads stock records from r, one per line. It stops at the
// first malformed line (wrong field count or unparseable field), recording
// the failure; the returned slice holds every record built before it and
// must be treated as possibly incomplete.
func ImportStocks(r io.Reader) ([]Investment, []LineError) {
	var stocks []Investment
	errs := importLines(r, stockFields, failFast, func(n int, fields []string) error {
		inv, err := NewInvestment(fmt.Sprintf("S%d", n), fields[0], fields[1], fields[2], fields[3], fields[4])
		if err != nil {
			return err
		}
		stocks = append(stocks, inv)
		return nil
	})
	return stocks, errs
}

// ImportBonds reads bond records from r, one per line. Lines with a field
// count other than 7 are silently skipped (they still consume a line
// number); any other failure stops the read and is recorded, as for stocks.
func ImportBonds(r io.Reader) ([]Bond, []LineError) {
	var bonds []Bond
	errs := importLines(r, bondFields, skipBadCount, func(n int, fields []string) error {
		b, err := NewBond(fmt.Sprintf("B%d", n), fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], fields[6])
		if err != nil {
			return err
		}
		bonds = append(bonds, b)
		return nil
	})
	return bonds, errs
}

// importLines drives a line-oriented read with an explicit fatality policy.
// build receives the 1-based line number and the comma-split fields.
func importLines(r io.Reader, wantFields int, policy linePolicy, build func(n int, fields []string) error) []LineError {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		fields := strings.Split(strings.TrimSpace(scanner.Text()), ",")
		if len(fields) != wantFields {
			if policy == skipBadCount {
				continue
			}
			return []LineError{{Line: n, Err: fmt.Errorf("got %d fields, want %d", len(fields), wantFields)}}
		}
		if err := build(n, fields); err != nil {
			return []LineError{{Line: n, Err: err}}
		}
	}
	if err := scanner.Err(); err != nil {
		return []LineError{{Line: n, Err: err}}
	}
	return nil
}

// ReadStocksFile reads a stock file from disk. An unreadable file is itself
// a recorded failure with an empty result.
func ReadStocksFile(path string) ([]Investment, []LineError) {
	f, err := os.Open(path)
	if err != nil {
		return nil, []LineError{{Err: err}}
	}
	defer f.Close()
	return ImportStocks(f)
}

// ReadBondsFile reads a bond file from disk.
func ReadBondsFile(path string) ([]Bond, []LineError) {
	f, err := os.Open(path)
	if err != nil {
		return nil, []LineError{{Err: err}}
	}
	defer f.Close()
	return ImportBonds(f)
}

// ExportCSV writes one row per stock with its derived metrics, all to two
// decimal places, under the header Symbol,Earnings,Yield%,Yearly%.
// The yearly return is evaluated at 'on'.
func ExportCSV(w io.Writer, stocks []Investment, on date.Date) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Symbol", "Earnings", "Yield%", "Yearly%"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, s := range stocks {
		row := []string{s.Symbol, s.Earnings().String(), s.PercentYield().Fixed(), s.YearlyReturnOn(on).Fixed()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", s.Symbol, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
