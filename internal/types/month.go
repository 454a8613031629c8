package types

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in UTC.
func MonthOf(t time.Time) Month {
	year, month, _ := t.UTC().Date()
	return NewMonth(year, month)
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return time.Time(m).MarshalJSON()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	t = t.UTC()
	return t.Year() == time.Time(m).Year() && t.Month() == time.Time(m).Month()
}

// MonthID identifies a bucket of monthly expenses. It is formatted as MM-YYYY.
type MonthID string

var (
	ErrInvalidMonthID = errors.New("the month id must be formatted as MM-YYYY")
	monthIDPattern    = regexp.MustCompile("^(0[1-9]|1[0-2])-[0-9]{4}$")
)

// ParseMonthID validates s and returns it as MonthID.
func ParseMonthID(s string) (MonthID, error) {
	if !monthIDPattern.MatchString(s) {
		return "", fmt.Errorf("%w, got '%s'", ErrInvalidMonthID, s)
	}

	return MonthID(s), nil
}

// MonthIDOf returns the MonthID of the month the time instant falls in.
func MonthIDOf(t time.Time) MonthID {
	t = t.UTC()
	return MonthID(fmt.Sprintf("%02d-%04d", t.Month(), t.Year()))
}

// Month returns the Month the id refers to.
func (id MonthID) Month() (Month, error) {
	t, err := time.Parse("01-2006", string(id))
	if err != nil {
		return Month{}, fmt.Errorf("%w, got '%s'", ErrInvalidMonthID, id)
	}

	return MonthOf(t), nil
}

// UnmarshalParam lets gin bind URI parameters to a MonthID.
func (id *MonthID) UnmarshalParam(p string) error {
	parsed, err := ParseMonthID(p)
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}
