package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/quantfold/folio/store"
)

// dbCmd inspects the durable holdings store.
type dbCmd struct {
	counts bool
}

func (*dbCmd) Name() string     { return "db" }
func (*dbCmd) Synopsis() string { return "inspect the persisted holdings" }
func (*dbCmd) Usage() string {
	return `fol db [-counts]

  Prints the rows of the holdings store, or only the row counts with -counts.
`
}

func (c *dbCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.counts, "counts", false, "Print row counts only")
}

func (c *dbCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := store.Open(*dbFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store %q: %v\n", *dbFile, err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	nStocks, err := st.CountStocks(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	nBonds, err := st.CountBonds(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%d stocks, %d bonds in %s\n", nStocks, nBonds, *dbFile)
	if c.counts {
		return subcommands.ExitSuccess
	}

	stocks, err := st.ListStocks(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	bonds, err := st.ListBonds(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSymbol\tQty\tPurchase\tCurrent\tDate")
	for _, r := range stocks {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.2f\t%s\n",
			r.PurchaseID, r.Symbol, r.Quantity, r.PurchasePrice, r.CurrentPrice, r.PurchaseDate)
	}
	w.Flush()

	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSymbol\tQty\tPurchase\tCurrent\tCoupon\tYield\tDate")
	for _, r := range bonds {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.2f\t%.2f\t%.4f\t%s\n",
			r.PurchaseID, r.Symbol, r.Quantity, r.PurchasePrice, r.CurrentPrice, r.Coupon, r.YieldRate, r.PurchaseDate)
	}
	w.Flush()

	return subcommands.ExitSuccess
}
