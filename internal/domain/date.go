package domain

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateFormat возвращается при некорректной строке даты
var ErrInvalidDateFormat = errors.New("domain: invalid date format")

// CalendarDate is a naive calendar day ("YYYY-MM-DD" on the wire).
// Dates are compared by calendar day only, never as instants; the system
// has no timezone handling at all.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseCalendarDate parses a "YYYY-MM-DD" string.
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return CalendarDateOf(t), nil
}

// CalendarDateOf extracts the calendar day of the given instant.
func CalendarDateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// IsZero reports whether the date is unset.
func (d CalendarDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Time returns midnight of the calendar day in UTC.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d is an earlier calendar day than o.
func (d CalendarDate) Before(o CalendarDate) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// Equal reports whether d and o are the same calendar day.
func (d CalendarDate) Equal(o CalendarDate) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}

// IsPast reports whether the date is strictly before now's calendar day.
func (d CalendarDate) IsPast(now time.Time) bool {
	return d.Before(CalendarDateOf(now))
}

// IsToday reports whether the date is now's calendar day.
func (d CalendarDate) IsToday(now time.Time) bool {
	return d.Equal(CalendarDateOf(now))
}

// String formats the date as "YYYY-MM-DD".
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Value implements driver.Valuer для записи в колонку DATE.
func (d CalendarDate) Value() (driver.Value, error) {
	return d.Time(), nil
}

// Scan implements sql.Scanner.
func (d *CalendarDate) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = CalendarDateOf(v)
		return nil
	case []byte:
		parsed, err := ParseCalendarDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseCalendarDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case nil:
		*d = CalendarDate{}
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into CalendarDate", ErrInvalidDateFormat, src)
	}
}
