package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/quantfold/folio/date"
	"github.com/quantfold/folio/renderer"
)

// reportCmd writes the fixed-width text report.
type reportCmd struct {
	date   string
	output string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "write the fixed-width text report" }
func (*reportCmd) Usage() string {
	return `fol report [-d <date>] [-o <file>]

  Writes the investor header followed by one fixed-width line per stock
  (earnings, percentage yield, annualized return) and per bond. With -o "-"
  the report goes to stdout.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Valuation date for the annualized return")
	f.StringVar(&c.output, "o", "report.txt", "Path of the report to write, or - for stdout")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	stocks, bonds := loadHoldings()
	text := renderer.ReportText(renderer.NewReport(loadInvestor(), stocks, bonds, on))

	if c.output == "-" {
		fmt.Print(text)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, []byte(text), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote report to %s\n", c.output)
	return subcommands.ExitSuccess
}
