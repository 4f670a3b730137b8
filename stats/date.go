package stats

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a plain calendar date. It is built from the year/month/day
// components of a "YYYY-MM-DD" string directly, never by way of a UTC
// timestamp, so a stored date always means the same calendar day
// regardless of the host timezone.
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate parses a "YYYY-MM-DD" string into a Date. Dates that do not
// exist on the calendar (e.g. 2024-02-31) are rejected.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}

	// Round-trip through time.Date to reject impossible component values.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return Date{}, fmt.Errorf("invalid date %q: no such calendar day", s)
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// Today returns the current calendar date in local time.
func Today() Date {
	now := time.Now()
	return Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns local midnight of the date. Used only for calendar
// arithmetic, never for parsing.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Local)
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

// AddDays returns the date n calendar days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	t := d.Time().AddDate(0, 0, n)
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// WeekStart returns the Monday on or before the date. A Sunday belongs to
// the week that started six days earlier.
func (d Date) WeekStart() Date {
	offset := (int(d.Time().Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

// MonthStart returns the first day of the date's calendar month.
func (d Date) MonthStart() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// AddMonths returns the first day of the month n calendar months after
// the date's month.
func (d Date) AddMonths(n int) Date {
	t := time.Date(d.Year, time.Month(d.Month+n), 1, 0, 0, 0, 0, time.Local)
	return Date{Year: t.Year(), Month: int(t.Month()), Day: 1}
}
