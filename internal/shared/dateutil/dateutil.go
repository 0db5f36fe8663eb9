// Package dateutil holds the calendar helpers shared by the request workflows.
// All dates are civil dates stored as midnight UTC.
package dateutil

import (
	"errors"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

var (
	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")
)

func ParseDate(v string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, v, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Truncate drops the clock part of t, keeping its calendar date in UTC.
func Truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// InclusiveDays counts the calendar days in [from, to]. It returns 0 when to is before from.
func InclusiveDays(from, to time.Time) int {
	from, to = Truncate(from), Truncate(to)
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}

func IsMonday(t time.Time) bool {
	return t.Weekday() == time.Monday
}

// WeekEnd returns the Sunday closing the ISO week that starts on monday.
func WeekEnd(monday time.Time) time.Time {
	return Truncate(monday).AddDate(0, 0, 6)
}

// YearRange returns [1 Jan year, 1 Jan year+1).
func YearRange(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}

// MonthRange parses "YYYY-MM" and returns [first day, first day of next month).
func MonthRange(month string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(MonthLayout, month, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}
	return start, start.AddDate(0, 1, 0), nil
}
