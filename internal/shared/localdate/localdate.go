package localdate

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Layout is the only wire format for dates in this system.
const Layout = "2006-01-02"

// Date is a calendar day without a time component. Every date that crosses
// an API or database boundary goes through this type so that a stored
// 2024-06-01 compares equal to a "today" of 2024-06-01 in the office's
// local time zone, never shifted through UTC.
type Date struct {
	year  int
	month time.Month
	day   int
}

func New(year int, month time.Month, day int) Date {
	return Date{year: year, month: month, day: day}
}

// Today returns the current calendar day in local time.
func Today() Date {
	return FromTime(time.Now())
}

// FromTime truncates t to its calendar day in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Parse parses a YYYY-MM-DD string.
func Parse(s string) (Date, error) {
	t, err := time.ParseInLocation(Layout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return FromTime(t), nil
}

func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

func (d Date) String() string {
	return d.Time().Format(Layout)
}

// Time returns midnight of the day in local time.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.Local)
}

func (d Date) Equal(o Date) bool {
	return d == o
}

func (d Date) Before(o Date) bool {
	if d.year != o.year {
		return d.year < o.year
	}
	if d.month != o.month {
		return d.month < o.month
	}
	return d.day < o.day
}

func (d Date) After(o Date) bool {
	return o.Before(d)
}

func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value stores the date as its YYYY-MM-DD string so the driver cannot
// apply a time zone conversion on the way in.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = FromTime(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into localdate.Date", src)
	}
}

func (d *Date) scanString(s string) error {
	// DATE columns may come back with a zero time suffix.
	s = strings.TrimSuffix(strings.TrimSpace(s), " 00:00:00")
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
