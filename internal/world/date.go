package world

import (
	"fmt"
	"strconv"
	"strings"
)

// Date is a calendar date in the "year.month.day" notation used by the game
// scripts. Days are never normalised; only months roll over into years.
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate parses "1938.1.1". Missing month or day components default to 1.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) == 0 || len(parts) > 3 || parts[0] == "" {
		return Date{}, fmt.Errorf("invalid date %q", s)
	}

	values := []int{0, 1, 1}
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
		}
		values[i] = v
	}
	if values[1] < 1 || values[1] > 12 {
		return Date{}, fmt.Errorf("invalid date %q: month out of range", s)
	}
	return Date{Year: values[0], Month: values[1], Day: values[2]}, nil
}

// MustParseDate is like ParseDate but panics on error. It is meant for
// package-level constants.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IncreaseByMonths returns d moved n months forward (or backward when n is
// negative). The day is left untouched.
func (d Date) IncreaseByMonths(n int) Date {
	total := d.Year*12 + (d.Month - 1) + n
	year := total / 12
	month := total % 12
	if month < 0 {
		month += 12
		year--
	}
	return Date{Year: year, Month: month + 1, Day: d.Day}
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	if d.Year != other.Year {
		return d.Year > other.Year
	}
	if d.Month != other.Month {
		return d.Month > other.Month
	}
	return d.Day > other.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%d.%d.%d", d.Year, d.Month, d.Day)
}
