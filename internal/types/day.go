// Package types implements special types for spendbin.
package types

import (
	"database/sql/driver"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Day is a calendar date. All days are kept in UTC at midnight so that
// comparisons between stored and requested days never mix time zones.
type Day time.Time

const dayLayout = "2006-01-02"

var dayPattern = regexp.MustCompile("^[0-9]{4}-[0-9]{2}-[0-9]{2}$")

// NewDay returns a new Day.
func NewDay(year int, month time.Month, day int) Day {
	return Day(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DayOf returns the UTC calendar date that the time instant t falls on.
func DayOf(t time.Time) Day {
	year, month, day := t.UTC().Date()
	return NewDay(year, month, day)
}

// Today returns the current UTC day.
func Today() Day {
	return DayOf(time.Now())
}

// ParseDay parses a string in "YYYY-MM-DD" or RFC3339 format.
//
// RFC3339 timestamps are converted to UTC before the date is taken.
func ParseDay(s string) (Day, error) {
	if dayPattern.MatchString(s) {
		t, err := time.Parse(dayLayout, s)
		if err != nil {
			return Day{}, err
		}
		return DayOf(t), nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Day{}, err
	}

	return DayOf(t), nil
}

// String returns the day formatted as YYYY-MM-DD.
func (d Day) String() string {
	return time.Time(d).Format(dayLayout)
}

// Time returns the start of the day as time.Time.
func (d Day) Time() time.Time {
	return time.Time(d)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The value is expected to be a string in a format accepted by ParseDay.
func (d *Day) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	day, err := ParseDay(value)
	if err != nil {
		return err
	}

	*d = day
	return nil
}

// UnmarshalParam lets gin bind URI and query parameters to a Day.
func (d *Day) UnmarshalParam(p string) error {
	if p == "" {
		*d = Day{}
		return nil
	}

	day, err := ParseDay(p)
	if err != nil {
		return err
	}

	*d = day
	return nil
}

// Scan writes the value from the database.
func (d *Day) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Day{}
		return nil
	case time.Time:
		*d = DayOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	}

	return fmt.Errorf("cannot scan %T into types.Day", value)
}

func (d *Day) scanString(s string) error {
	for _, layout := range []string{"2006-01-02 15:04:05.999999999-07:00", time.RFC3339Nano, dayLayout} {
		t, err := time.Parse(layout, s)
		if err == nil {
			*d = DayOf(t)
			return nil
		}
	}

	return fmt.Errorf("cannot parse %q as types.Day", s)
}

// Value returns the value for the SQL driver to write to the database.
func (d Day) Value() (driver.Value, error) {
	year, month, day := time.Time(d).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm the type.
func (Day) GormDataType() string {
	return "date"
}

// IsZero reports if the day is the zero value.
func (d Day) IsZero() bool {
	return time.Time(d).IsZero()
}

// AddDays adds the specified amount of days.
func (d Day) AddDays(days int) Day {
	return Day(time.Time(d).AddDate(0, 0, days))
}

// Next returns the following day, the exclusive upper bound of the day.
func (d Day) Next() Day {
	return d.AddDays(1)
}

// Before reports whether the day d is before e.
func (d Day) Before(e Day) bool {
	return time.Time(d).Before(time.Time(e))
}

// Equal reports whether d and e represent the same day.
func (d Day) Equal(e Day) bool {
	return time.Time(d).Equal(time.Time(e))
}

// Contains reports whether the time instant falls on the day.
func (d Day) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(time.Time(d)) && t.Before(time.Time(d.Next()))
}
