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

// summaryCmd displays the holdings summary as markdown in the terminal.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the holdings summary in the terminal" }
func (*summaryCmd) Usage() string {
	return `fol summary [-d <date>]

  Displays the investor's holdings with their figures as a markdown table.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Valuation date for the annualized return")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	stocks, bonds := loadHoldings()
	printMarkdown(renderer.SummaryMarkdown(renderer.NewReport(loadInvestor(), stocks, bonds, on)))
	return subcommands.ExitSuccess
}
