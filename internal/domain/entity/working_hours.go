package entity

import (
	"slices"

	"github.com/google/uuid"
)

// WorkingHours is one opening interval of a provider. A provider has at most
// one interval per day.
type WorkingHours struct {
	ID         uuid.UUID
	ProviderID uuid.UUID
	DayOfWeek  DayOfWeek
	StartTime  TimeOfDay
	EndTime    TimeOfDay
}

// Covers reports whether the interval is open on day at t. Both ends are inclusive.
func (w WorkingHours) Covers(day DayOfWeek, t TimeOfDay) bool {
	return w.DayOfWeek == day && w.StartTime <= t && t <= w.EndTime
}

// IsOpen reports whether any interval covers day at t.
func IsOpen(day DayOfWeek, t TimeOfDay, intervals []WorkingHours) bool {
	return slices.ContainsFunc(intervals, func(w WorkingHours) bool {
		return w.Covers(day, t)
	})
}

// SortWorkingHours orders intervals by day rank, Sunday first.
func SortWorkingHours(intervals []WorkingHours) {
	slices.SortStableFunc(intervals, func(a, b WorkingHours) int {
		return CompareDayOfWeek(a.DayOfWeek, b.DayOfWeek)
	})
}
