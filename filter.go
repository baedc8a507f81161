package folio

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/quantfold/folio/date"
)

// Filter is the interactive read-eval loop over a run's stock holdings.
// It reads from r and writes to w so a session can be driven in tests.
type Filter struct {
	w      io.Writer
	r      *bufio.Reader
	stocks []Investment
	on     date.Date
}

// NewFilter creates a Filter evaluating yearly returns at the given date.
func NewFilter(w io.Writer, r io.Reader, stocks []Investment, on date.Date) *Filter {
	return &Filter{w: w, r: bufio.NewReader(r), stocks: stocks, on: on}
}

// Run starts the interactive session. Unrecognized input reports an error
// and re-prompts; an explicit exit command or end of input ends the session
// cleanly. It never fails the process over a bad choice.
func (f *Filter) Run() error {
	for {
		fmt.Fprintln(f.w, "\nFilter options: [1] positive, [2] negative, [3] sort, [4] lookup, [5] exit")
		fmt.Fprint(f.w, "Choice: ")
		line, err := f.r.ReadString('\n')
		if err != nil && line == "" {
			if err == io.EOF {
				return nil // clean exit on Ctrl+D
			}
			return err
		}
		switch norm(line) {
		case "1", "positive":
			f.listByEarnings(func(m Money) bool { return m.IsPositive() })
		case "2", "negative":
			f.listByEarnings(func(m Money) bool { return m.IsNegative() })
		case "3", "sort":
			f.sortByYearlyReturn()
		case "4", "lookup":
			if err := f.lookup(); err != nil {
				return err
			}
		case "5", "exit", "quit":
			return nil
		default:
			fmt.Fprintln(f.w, "Invalid.")
		}
	}
}

// norm reduces user input to its first lowercased word.
func norm(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func (f *Filter) listByEarnings(keep func(Money) bool) {
	for _, s := range f.stocks {
		if e := s.Earnings(); keep(e) {
			fmt.Fprintf(f.w, "%s: %s\n", s.Symbol, e.Display())
		}
	}
}

func (f *Filter) sortByYearlyReturn() {
	sorted := make([]Investment, len(f.stocks))
	copy(sorted, f.stocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].YearlyReturnOn(f.on) > sorted[j].YearlyReturnOn(f.on)
	})
	for _, s := range sorted {
		fmt.Fprintf(f.w, "%s: %s\n", s.Symbol, s.YearlyReturnOn(f.on))
	}
}

func (f *Filter) lookup() error {
	fmt.Fprint(f.w, "Enter symbol: ")
	line, err := f.r.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return nil
		}
		return err
	}
	sym := strings.ToUpper(strings.TrimSpace(line))
	for _, s := range f.stocks {
		if s.Symbol == sym {
			fmt.Fprintf(f.w, "%s: Earn=%s, Yearly%%=%s\n", s.Symbol, s.Earnings(), s.YearlyReturnOn(f.on).Fixed())
			return nil
		}
	}
	fmt.Fprintln(f.w, "Not found.")
	return nil
}
