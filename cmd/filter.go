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

// filterCmd starts the interactive filter session over the stocks.
type filterCmd struct {
	date string
}

func (*filterCmd) Name() string     { return "filter" }
func (*filterCmd) Synopsis() string { return "interactively filter and inspect the stocks" }
func (*filterCmd) Usage() string {
	return `fol filter [-d <date>]

  Starts an interactive session over the stocks: list positive or negative
  earners, sort by annualized return, or look a symbol up. Type 'exit' to
  leave.
`
}

func (c *filterCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Valuation date for the annualized return")
}

func (c *filterCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	stocks, _ := loadHoldings()
	if err := folio.NewFilter(os.Stdout, os.Stdin, stocks, on).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in filter session: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
