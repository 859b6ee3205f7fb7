package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	domainerrors "pawtrack/internal/domain/errors"
)

// TimeOfDay is a wall-clock time with minute precision, stored as minutes after midnight.
type TimeOfDay int

const minutesPerDay = 24 * 60

// NewTimeOfDay builds a TimeOfDay from hour and minute.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, domainerrors.ErrInvalidArgument.WithDetails(fmt.Sprintf("invalid time %02d:%02d", hour, minute))
	}

	return TimeOfDay(hour*60 + minute), nil
}

// MustTimeOfDay parses s and panics on failure. Intended for fixtures.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}

	return t
}

// ParseTimeOfDay accepts "HH:MM", and "HH:MM:SS" as long as the seconds are zero.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	invalid := domainerrors.ErrInvalidArgument.WithDetails("invalid time of day: " + s)

	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, invalid
	}

	if len(parts) == 3 {
		sec := parts[2]
		// database drivers may append fractional seconds
		if i := strings.IndexByte(sec, '.'); i >= 0 {
			if strings.Trim(sec[i+1:], "0") != "" {
				return 0, invalid
			}
			sec = sec[:i]
		}
		if n, err := strconv.Atoi(sec); err != nil || n != 0 || len(sec) != 2 {
			return 0, invalid
		}
	}

	if len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, invalid
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, invalid
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, invalid
	}

	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		return 0, invalid
	}

	return t, nil
}

// Hour returns the hour component.
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute returns the minute component.
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// IsValid reports whether t falls inside a single day.
func (t TimeOfDay) IsValid() bool {
	return t >= 0 && t < minutesPerDay
}

// String formats as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return domainerrors.ErrInvalidArgument.WithDetails("time of day must be a string")
	}

	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}
