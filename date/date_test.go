package date

import (
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer
		// for the timezone), this test also checks that the property remains true.
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Date
		ok   bool
	}{
		{"01/15/2020", New(2020, time.January, 15), true},
		{"8/1/2017", New(2017, time.August, 1), true},
		{"12/31/1999", New(1999, time.December, 31), true},
		{"2020-01-15", Date{}, false},
		{"31/12/1999", Date{}, false}, // day-first is not a valid US date
		{"", Date{}, false},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("Parse(%q) error = %v, want ok=%v", tc.in, err, tc.ok)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseMarket(t *testing.T) {
	got, err := ParseMarket("5-Jun-17")
	if err != nil {
		t.Fatalf("ParseMarket() error = %v", err)
	}
	if got != New(2017, time.June, 5) {
		t.Errorf("ParseMarket() = %v, want 2017-06-05", got)
	}
	// zero-padded day is accepted too
	got, err = ParseMarket("05-Jun-17")
	if err != nil {
		t.Fatalf("ParseMarket() padded day error = %v", err)
	}
	if got != New(2017, time.June, 5) {
		t.Errorf("ParseMarket() padded = %v, want 2017-06-05", got)
	}
	if _, err := ParseMarket("2017-06-05"); err == nil {
		t.Error("ParseMarket() accepted an ISO date")
	}
}

func TestString(t *testing.T) {
	d := New(2017, time.August, 1)
	if got := d.String(); got != "08/01/2017" {
		t.Errorf("String() = %q, want %q", got, "08/01/2017")
	}
}

func TestDaysUntil(t *testing.T) {
	a := New(2020, time.January, 1)
	if got := a.DaysUntil(New(2020, time.January, 31)); got != 30 {
		t.Errorf("DaysUntil() = %d, want 30", got)
	}
	if got := a.DaysUntil(New(2019, time.December, 31)); got != -1 {
		t.Errorf("DaysUntil() backwards = %d, want -1", got)
	}
	// leap year 2020: full year is 366 days
	if got := a.DaysUntil(New(2021, time.January, 1)); got != 366 {
		t.Errorf("DaysUntil() over leap year = %d, want 366", got)
	}
}
