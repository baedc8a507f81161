// Package folio implements a small investor's holdings valuation engine.
//
// It parses line-oriented stock and bond files into a polymorphic holding
// model, computes per-holding metrics (earnings, percentage yield,
// annualized return), and feeds the resulting holdings to the persistence
// layer (package store) and to the reporting, export, filtering and
// charting surfaces exposed by the fol command.
package folio
