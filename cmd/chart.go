package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/quantfold/folio"
)

// chartCmd draws the portfolio value chart from an external price history.
type chartCmd struct {
	prices string
	path   string
	out    string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw a PNG chart of position value per symbol" }
func (*chartCmd) Usage() string {
	return `fol chart [-prices <file>] [-path <jsonpath>] [-out <file>]

  Reads a JSON price history, keeps the records for held symbols, multiplies
  each close by the held quantity and draws one line per symbol.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.prices, "prices", "prices.json", "Path of the JSON price history")
	f.StringVar(&c.path, "path", "$", "jsonpath locating the price records inside the JSON document")
	f.StringVar(&c.out, "out", "portfolio.png", "Path of the PNG chart to write")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stocks, _ := loadHoldings()
	if err := writeChart(c.prices, c.path, c.out, stocks); err != nil {
		fmt.Fprintf(os.Stderr, "Error drawing chart: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote chart to %s\n", c.out)
	return subcommands.ExitSuccess
}

// writeChart reads the price history and renders the PNG chart.
func writeChart(prices, path, out string, stocks []folio.Investment) error {
	f, err := os.Open(prices)
	if err != nil {
		return fmt.Errorf("could not open price history: %w", err)
	}
	defer f.Close()

	records, skipped, err := folio.DecodePriceRecords(f, path)
	if err != nil {
		return fmt.Errorf("could not decode price history %q: %w", prices, err)
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "Skipped %d unreadable price records in %q\n", skipped, prices)
	}

	series := folio.PositionSeries(records, folio.Positions(stocks))

	o, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("could not create chart file: %w", err)
	}
	defer o.Close()
	if err := folio.RenderChart(o, series); err != nil {
		return err
	}
	return o.Close()
}
