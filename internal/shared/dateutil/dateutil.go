// Package dateutil normalizes calendar dates.
//
// Every date column is stored as UTC midnight of the studio-local calendar day, so that
// equality and range comparisons behave the same on PostgreSQL, Oracle and SQLite.
package dateutil

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// Clock returns the current instant. Services take one so tests can pin "today".
type Clock func() time.Time

// SystemClock is the production clock
func SystemClock() time.Time {
	return time.Now()
}

// FixedClock returns a clock that always reports t
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// Of returns the calendar day of t in loc as a UTC-midnight date
func Of(t time.Time, loc *time.Location) datatypes.Date {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// Today returns today's date in loc
func Today(clock Clock, loc *time.Location) datatypes.Date {
	return Of(clock(), loc)
}

// Parse reads a YYYY-MM-DD string
func Parse(s string) (datatypes.Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("날짜 형식 오류 %q: %w", s, err)
	}
	return datatypes.Date(t), nil
}

// ParsePtr parses s unless it is nil or empty
func ParsePtr(s *string) (*datatypes.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := Parse(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Format renders a date as YYYY-MM-DD
func Format(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

// FormatPtr renders nil as nil
func FormatPtr(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := Format(*d)
	return &s
}

// ToTime converts a nullable date column into *time.Time
func ToTime(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}

// Before reports whether a is strictly earlier than b
func Before(a, b datatypes.Date) bool {
	return time.Time(a).Before(time.Time(b))
}

// AddDays shifts a date by n calendar days
func AddDays(d datatypes.Date, n int) datatypes.Date {
	return datatypes.Date(time.Time(d).AddDate(0, 0, n))
}

// MonthRange parses YYYY-MM and returns [first day, first day of next month)
func MonthRange(month string) (datatypes.Date, datatypes.Date, error) {
	t, err := time.ParseInLocation(MonthLayout, month, time.UTC)
	if err != nil {
		return datatypes.Date{}, datatypes.Date{}, fmt.Errorf("월 형식 오류 %q: %w", month, err)
	}
	return datatypes.Date(t), datatypes.Date(t.AddDate(0, 1, 0)), nil
}
