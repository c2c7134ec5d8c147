package domain

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeFormat возвращается при некорректной строке времени
var ErrInvalidTimeFormat = errors.New("domain: invalid time format")

// TimeOfDay represents a naive wall-clock time as minutes since midnight.
// The zero value (midnight) is treated as "not set" by request validation:
// the bookable grid starts at 09:00, so a real midnight never occurs.
type TimeOfDay int

// ParseTimeOfDay parses a 24-hour "H:MM" or "HH:MM" string.
// Minute values that are not aligned to the 30-minute grid are accepted:
// raw interval bounds like "9:15" are legal, the grid itself only ever
// emits :00/:30 slots.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	if len(s) < 4 || len(s) > 5 || s[len(s)-3] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// TimeOfDayFromMinutes converts minutes since midnight into a TimeOfDay.
func TimeOfDayFromMinutes(m int) TimeOfDay {
	return TimeOfDay(m)
}

// TimeOfDayOf extracts the wall-clock time of the given instant,
// truncated to whole minutes.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int { return int(t) }

// Hour returns the hour component (0-23).
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the minute component (0-59).
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// IsZero reports whether the value is unset (see the type comment).
func (t TimeOfDay) IsZero() bool { return t == 0 }

// AddMinutes returns the time shifted forward by m minutes.
func (t TimeOfDay) AddMinutes(m int) TimeOfDay { return t + TimeOfDay(m) }

// Before reports whether t is strictly earlier than o.
func (t TimeOfDay) Before(o TimeOfDay) bool { return t < o }

// After reports whether t is strictly later than o.
func (t TimeOfDay) After(o TimeOfDay) bool { return t > o }

// String formats the time as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Value implements driver.Valuer для записи в колонку TIME.
func (t TimeOfDay) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:00", t.Hour(), t.Minute()), nil
}

// Scan implements sql.Scanner. lib/pq отдаёт колонку TIME как time.Time,
// текстовые драйверы — как []byte/string.
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*t = TimeOfDayOf(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	case nil:
		*t = 0
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into TimeOfDay", ErrInvalidTimeFormat, src)
	}
}

func (t *TimeOfDay) scanString(s string) error {
	// Обрезаем секунды, если база вернула "HH:MM:SS"
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// AreConsecutive reports whether b starts exactly one grid step after a.
func AreConsecutive(a, b TimeOfDay) bool {
	return b.Minutes()-a.Minutes() == SlotStepMinutes
}
