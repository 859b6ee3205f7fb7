package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"pawtrack/internal/domain/entity"
)

// ClockTime maps a SQL TIME column to a minute-precision time of day.
// Values are written as "HH:MM".
type ClockTime entity.TimeOfDay

// Value implements driver.Valuer.
func (c ClockTime) Value() (driver.Value, error) {
	return entity.TimeOfDay(c).String(), nil
}

// Scan implements sql.Scanner.
func (c *ClockTime) Scan(src any) error {
	var (
		t   entity.TimeOfDay
		err error
	)

	switch v := src.(type) {
	case string:
		t, err = entity.ParseTimeOfDay(v)
	case []byte:
		t, err = entity.ParseTimeOfDay(string(v))
	case time.Time:
		t, err = entity.NewTimeOfDay(v.Hour(), v.Minute())
	default:
		return fmt.Errorf("cannot scan %T into ClockTime", src)
	}
	if err != nil {
		return fmt.Errorf("scan ClockTime: %w", err)
	}

	*c = ClockTime(t)

	return nil
}
