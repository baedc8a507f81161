package renderer

import (
	"github.com/quantfold/folio"
	"github.com/quantfold/folio/date"
)

// ReportStock is one equity line of the report, metrics already computed.
type ReportStock struct {
	ID           string
	Symbol       string
	Quantity     int64
	Earnings     float64
	PercentYield float64
	YearlyReturn float64
}

// ReportBond is one bond line of the report. Per the report layout, bonds
// show earnings and purchase date but no yield columns.
type ReportBond struct {
	ID           string
	Symbol       string
	Quantity     int64
	Earnings     float64
	PurchaseDate string
}

// Report is the investor's full holding report, ready to render.
type Report struct {
	Investor folio.Investor
	Date     date.Date
	Stocks   []ReportStock
	Bonds    []ReportBond
}

// NewReport computes every line of the report from the holdings' public
// metric accessors, evaluating yearly returns at the given date.
func NewReport(investor folio.Investor, stocks []folio.Investment, bonds []folio.Bond, on date.Date) *Report {
	r := &Report{Investor: investor, Date: on}
	for _, s := range stocks {
		r.Stocks = append(r.Stocks, ReportStock{
			ID:           s.PurchaseID,
			Symbol:       s.Symbol,
			Quantity:     s.Quantity,
			Earnings:     s.Earnings().Float64(),
			PercentYield: float64(s.PercentYield()),
			YearlyReturn: float64(s.YearlyReturnOn(on)),
		})
	}
	for _, b := range bonds {
		r.Bonds = append(r.Bonds, ReportBond{
			ID:           b.PurchaseID,
			Symbol:       b.Symbol,
			Quantity:     b.Quantity,
			Earnings:     b.Earnings().Float64(),
			PurchaseDate: b.PurchaseDate.String(),
		})
	}
	return r
}

// ReportText renders the fixed-width investment report.
func ReportText(r *Report) string {
	partials := map[string]string{
		"report_stocks": "report_stocks.tmpl",
		"report_bonds":  "report_bonds.tmpl",
	}
	return renderTemplate("report", "report.tmpl", partials, r)
}

// SummaryMarkdown renders the holdings summary as a markdown document.
func SummaryMarkdown(r *Report) string {
	partials := map[string]string{
		"summary_stocks": "summary_stocks.md",
		"summary_bonds":  "summary_bonds.md",
	}
	return renderTemplate("summary", "summary.md", partials, r)
}
