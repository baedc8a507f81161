// Package cmd implements the CLI application to value a portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/subcommands"
	"github.com/quantfold/folio"
	"gopkg.in/yaml.v3"
)

// Commands lists the subcommands of the application.
// A main package ranges over Commands and registers each one.
var Commands = []subcommands.Command{
	&runCmd{},
	&reportCmd{},
	&exportCmd{},
	&filterCmd{},
	&chartCmd{},
	&dbCmd{},
	&summaryCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var stocksFile = flag.String("stocks", envOr(EnvStocksFile, "stocks.txt"), "Path to the stocks file (5 comma-separated fields per line)")
var bondsFile = flag.String("bonds", envOr(EnvBondsFile, "bonds.txt"), "Path to the bonds file (7 comma-separated fields per line)")
var dbFile = flag.String("db", envOr(EnvDBFile, "portfolio.db"), "Path to the SQLite holdings store")
var investorFile = flag.String("investor", envOr(EnvInvestorFile, "investor.yaml"), "Path to the investor identity file (YAML)")
var Verbose = flag.Bool("v", false, "Enable verbose logging")

// seedBond is the treasury note every run carries alongside the bonds file.
// It lives here rather than in the core: the parsers only ever return what
// the input files contain.
func seedBond() folio.Bond {
	b, err := folio.NewBond("B999", "GT2:GOV", "200", "100.02", "100.05", "1.38", "1.35%", "8/1/2017")
	if err != nil {
		panic(err)
	}
	return b
}

// loadHoldings reads both input files and reports every line-level failure
// on stderr. Results may be partial; the seed bond is always appended.
func loadHoldings() (stocks []folio.Investment, bonds []folio.Bond) {
	stocks, serrs := folio.ReadStocksFile(*stocksFile)
	for _, e := range serrs {
		fmt.Fprintf(os.Stderr, "Error reading stocks file %q: %v\n", *stocksFile, e)
	}
	bonds, berrs := folio.ReadBondsFile(*bondsFile)
	for _, e := range berrs {
		fmt.Fprintf(os.Stderr, "Error reading bonds file %q: %v\n", *bondsFile, e)
	}
	bonds = append(bonds, seedBond())
	return stocks, bonds
}

// loadInvestor reads the investor identity from the investor file.
// A missing file falls back to the default identity.
func loadInvestor() folio.Investor {
	investor := folio.Investor{
		ID:      "INV001",
		Name:    "Peyton Holdbrooks",
		Address: "Denver, CO",
		Phone:   "(334)500-2140",
	}
	data, err := os.ReadFile(*investorFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error reading investor file %q: %v\n", *investorFile, err)
		}
		return investor
	}
	if err := yaml.Unmarshal(data, &investor); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing investor file %q: %v\n", *investorFile, err)
	}
	return investor
}
