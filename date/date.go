package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// USFormat is the format used by holding input files (MM/DD/YYYY).
// Reading is permissive and accepts single-digit month and day (8/1/2017).
const USFormat = "1/2/2006"

// writeFormat is the canonical zero-padded form used for display and storage.
const writeFormat = "01/02/2006"

// MarketFormat is the format used by external price records (DD-Mon-YY).
const MarketFormat = "2-Jan-06"

// Date represent a date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Year returns the date's year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// DaysUntil returns the exact number of whole days from d to x.
// Negative when x is before d.
func (d Date) DaysUntil(x Date) int {
	return int(x.time().Sub(d.time()) / (24 * time.Hour))
}

// Time returns the canonical instant (midnight UTC) for the date.
func (d Date) Time() time.Time { return d.time() }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// String formats the date in its canonical MM/DD/YYYY form.
func (d Date) String() string { return d.time().Format(writeFormat) }

// Parse parses a Date from a string in the US input format. It is lenient
// and accepts forms like "8/1/2017" as well as "08/01/2017".
func Parse(str string) (Date, error) {
	on, err := time.Parse(USFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, USFormat, err)
	}
	return New(on.Date()), nil
}

// ParseMarket parses a Date from an external price record (e.g. "5-Jun-17").
func ParseMarket(str string) (Date, error) {
	on, err := time.Parse(MarketFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid market date %q want format %q: %w", str, MarketFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}
