package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/quantfold/folio"
	"github.com/quantfold/folio/date"
	"github.com/quantfold/folio/renderer"
	"github.com/quantfold/folio/store"
)

// runCmd runs the whole pipeline: parse, persist, report, export, filter, chart.
type runCmd struct {
	date   string
	report string
	csv    string
	prices string
	path   string
	out    string
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "parse the input files and run the full pipeline" }
func (*runCmd) Usage() string {
	return `fol run [-d <date>] [-report <file>] [-csv <file>] [-prices <file>] [-out <file>]

  Reads the stocks and bonds files, persists every holding into the store,
  writes the text report and the CSV export, starts the interactive filter
  and finally draws the portfolio chart. The store is the only fatal
  collaborator: a report, export, filter or chart failure is reported on
  stderr and the run continues.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Valuation date for the annualized return")
	f.StringVar(&c.report, "report", "report.txt", "Path of the text report to write")
	f.StringVar(&c.csv, "csv", "portfolio.csv", "Path of the CSV export to write")
	f.StringVar(&c.prices, "prices", "prices.json", "Path of the JSON price history")
	f.StringVar(&c.path, "path", "$", "jsonpath locating the price records inside the JSON document")
	f.StringVar(&c.out, "out", "portfolio.png", "Path of the PNG chart to write")
}

func (c *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	stocks, bonds := loadHoldings()

	// The store scope wraps the whole run.
	st, err := store.Open(*dbFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store %q: %v\n", *dbFile, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	if err := st.UpsertHoldings(ctx, stocks, bonds); err != nil {
		fmt.Fprintf(os.Stderr, "Error persisting holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	rep := renderer.NewReport(loadInvestor(), stocks, bonds, on)
	if err := os.WriteFile(c.report, []byte(renderer.ReportText(rep)), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report %q: %v\n", c.report, err)
	} else {
		fmt.Printf("Wrote report to %s\n", c.report)
	}

	if err := writeCSV(c.csv, stocks, on); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing CSV %q: %v\n", c.csv, err)
	} else {
		fmt.Printf("Wrote CSV to %s\n", c.csv)
	}

	if err := folio.NewFilter(os.Stdout, os.Stdin, stocks, on).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in filter session: %v\n", err)
	}

	if err := writeChart(c.prices, c.path, c.out, stocks); err != nil {
		fmt.Fprintf(os.Stderr, "Error drawing chart: %v\n", err)
	} else {
		fmt.Printf("Wrote chart to %s\n", c.out)
	}

	return subcommands.ExitSuccess
}

func writeCSV(path string, stocks []folio.Investment, on date.Date) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := folio.ExportCSV(f, stocks, on); err != nil {
		return err
	}
	return f.Close()
}
