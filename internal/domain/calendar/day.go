// Package calendar provides a date-only value used to group records by
// the day they belong to, independent of time of day.
package calendar

import (
	"cloud.google.com/go/civil"
	"fmt"
	"strings"
	"time"
)

const Layout = "2006-01-02"

// Day is a calendar date without a time or location. The zero Day is not
// a valid date and reports IsZero.
type Day civil.Date

// Of returns the calendar day of t in t's own location.
func Of(t time.Time) Day {
	return Day(civil.DateOf(t))
}

// Date normalizes its arguments the way time.Date does, so Date(2024, 2, 30)
// is March 1st.
func Date(year int, month time.Month, day int) Day {
	return Of(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func Parse(s string) (Day, error) {
	d, err := civil.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q: expected %s", s, Layout)
	}
	return Day(d), nil
}

func (d Day) IsZero() bool {
	return d == Day{}
}

// Time returns midnight of d in loc.
func (d Day) Time(loc *time.Location) time.Time {
	return civil.Date(d).In(loc)
}

func (d Day) AddDays(n int) Day {
	return Day(civil.Date(d).AddDays(n))
}

func (d Day) Before(other Day) bool { return civil.Date(d).Before(civil.Date(other)) }
func (d Day) After(other Day) bool  { return civil.Date(d).After(civil.Date(other)) }

func (d Day) Compare(other Day) int {
	switch {
	case d.Before(other):
		return -1
	case d.After(other):
		return 1
	default:
		return 0
	}
}

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return civil.Date(d).String()
}

func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Day{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalParam lets echo bind path and query parameters into a Day.
func (d *Day) UnmarshalParam(param string) error {
	return d.UnmarshalText([]byte(param))
}
