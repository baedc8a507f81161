package folio

import (
	"strings"
	"testing"
	"time"

	"github.com/quantfold/folio/date"
)

const filterMenu = "\nFilter options: [1] positive, [2] negative, [3] sort, [4] lookup, [5] exit\nChoice: "

// runFilterSession drives a scripted session and returns the transcript.
func runFilterSession(t *testing.T, input string) string {
	t.Helper()
	stocks, errs := ImportStocks(strings.NewReader(
		"GOOGL,10,100.00,120.00,1/1/2020\n" +
			"MSFT,10,100.00,90.00,1/1/2020\n"))
	if len(errs) != 0 {
		t.Fatalf("ImportStocks() errors: %v", errs)
	}
	var out strings.Builder
	on := date.New(2024, time.January, 1)
	if err := NewFilter(&out, strings.NewReader(input), stocks, on).Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	return out.String()
}

func TestFilterPositive(t *testing.T) {
	got := runFilterSession(t, "1\nexit\n")
	want := filterMenu + "GOOGL: $200.00\n" + filterMenu
	if got != want {
		t.Errorf("session transcript = %q, want %q", got, want)
	}
}

func TestFilterNegative(t *testing.T) {
	got := runFilterSession(t, "negative\n5\n")
	want := filterMenu + "MSFT: -$100.00\n" + filterMenu
	if got != want {
		t.Errorf("session transcript = %q, want %q", got, want)
	}
}

func TestFilterSort(t *testing.T) {
	got := runFilterSession(t, "3\nexit\n")
	want := filterMenu + "GOOGL: 5.00%\nMSFT: -2.50%\n" + filterMenu
	if got != want {
		t.Errorf("session transcript = %q, want %q", got, want)
	}
}

func TestFilterLookup(t *testing.T) {
	// Lookup is case-insensitive on input, exact on the stored symbol.
	got := runFilterSession(t, "4\nmsft\nexit\n")
	want := filterMenu + "Enter symbol: MSFT: Earn=-100.00, Yearly%=-2.50\n" + filterMenu
	if got != want {
		t.Errorf("session transcript = %q, want %q", got, want)
	}

	got = runFilterSession(t, "lookup\nNOPE\nquit\n")
	want = filterMenu + "Enter symbol: Not found.\n" + filterMenu
	if got != want {
		t.Errorf("session transcript = %q, want %q", got, want)
	}
}

func TestFilterInvalidChoice(t *testing.T) {
	got := runFilterSession(t, "bogus\nexit\n")
	want := filterMenu + "Invalid.\n" + filterMenu
	if got != want {
		t.Errorf("session transcript = %q, want %q", got, want)
	}
}

func TestFilterEOFIsCleanExit(t *testing.T) {
	// Input ending without an exit command behaves like Ctrl+D.
	got := runFilterSession(t, "1\n")
	want := filterMenu + "GOOGL: $200.00\n" + filterMenu
	if got != want {
		t.Errorf("session transcript = %q, want %q", got, want)
	}
}
