// Package date provides a day granularity Date, used to count vacation days and months
// worked.
package date

import (
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// brDateFormat is the format dates are typed in Brazil.
const brDateFormat = "2/1/2006"

const Day = 24 * time.Hour

// Date represents a date with day-level granularity.
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

func (d Date) Year() int          { return d.y }
func (d Date) IsZero() bool       { return d == Date{} }
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }
func (d Date) After(x Date) bool  { return d.time().After(x.time()) }
func (d Date) EndOfMonth() Date   { return New(d.y, d.m+1, 0) }

// AddMonths returns the date n months later, the day is normalized like time.AddDate does.
func (d Date) AddMonths(n int) Date { return New(d.y, d.m+time.Month(n), d.d) }

// Sub returns the number of days from x to d.
func (d Date) Sub(x Date) int { return int(d.time().Sub(x.time()) / Day) }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Parse parses a Date from a string. It accepts ISO dates like "2025-7-1" and Brazilian
// dates like "01/07/2025".
func Parse(str string) (Date, error) {
	layout := readDateFormat
	if strings.Contains(str, "/") {
		layout = brDateFormat
	}
	on, err := time.Parse(layout, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q or %q: %w", str, readDateFormat, brDateFormat, err)
	}
	return New(on.Date()), nil
}
