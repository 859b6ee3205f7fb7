package entity

import (
	"slices"
	"strings"

	domainerrors "pawtrack/internal/domain/errors"
)

// DayOfWeek is a weekday token as stored and exchanged over the API.
type DayOfWeek string

const (
	Sunday    DayOfWeek = "SUNDAY"
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
)

// dayRanks orders the week starting on Sunday.
var dayRanks = map[DayOfWeek]int{
	Sunday:    1,
	Monday:    2,
	Tuesday:   3,
	Wednesday: 4,
	Thursday:  5,
	Friday:    6,
	Saturday:  7,
}

// DaysOfWeek returns every day in rank order.
func DaysOfWeek() []DayOfWeek {
	return []DayOfWeek{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

// ParseDayOfWeek accepts a day name in any letter case.
func ParseDayOfWeek(token string) (DayOfWeek, error) {
	day := DayOfWeek(strings.ToUpper(strings.TrimSpace(token)))
	if !day.IsValid() {
		return "", domainerrors.ErrInvalidArgument.WithDetails("invalid day_of_week: " + token)
	}

	return day, nil
}

// IsValid reports whether d is one of the seven day tokens.
func (d DayOfWeek) IsValid() bool {
	_, ok := dayRanks[d]

	return ok
}

// Rank returns 1 for Sunday through 7 for Saturday, 0 for unknown tokens.
func (d DayOfWeek) Rank() int {
	return dayRanks[d]
}

// String returns the string representation of the DayOfWeek.
func (d DayOfWeek) String() string {
	return string(d)
}

// CompareDayOfWeek orders days by rank.
func CompareDayOfWeek(a, b DayOfWeek) int {
	return a.Rank() - b.Rank()
}

// SortDaysOfWeek sorts days in place by rank.
func SortDaysOfWeek(days []DayOfWeek) {
	slices.SortStableFunc(days, CompareDayOfWeek)
}
