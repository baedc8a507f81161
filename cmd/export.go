package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/quantfold/folio"
	"github.com/quantfold/folio/date"
)

// exportCmd writes the per-stock CSV summary.
type exportCmd struct {
	date   string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the stock figures as CSV" }
func (*exportCmd) Usage() string {
	return `fol export [-d <date>] [-o <file>]

  Writes one CSV row per stock with its earnings, percentage yield and
  annualized return. With -o "-" the CSV goes to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Valuation date for the annualized return")
	f.StringVar(&c.output, "o", "portfolio.csv", "Path of the CSV to write, or - for stdout")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	stocks, _ := loadHoldings()

	if c.output == "-" {
		if err := folio.ExportCSV(os.Stdout, stocks, on); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	if err := writeCSV(c.output, stocks, on); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing CSV %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote CSV to %s\n", c.output)
	return subcommands.ExitSuccess
}
