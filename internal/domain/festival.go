package domain

import "time"

// FestivalEvent represents a closed-date range during which no offering
// accepts bookings. Both boundary dates count as closed.
type FestivalEvent struct {
	ID        int64
	Name      string
	StartDate time.Time
	EndDate   time.Time

	CreatedAt time.Time
}

// Contains returns true if the calendar date falls within the festival
// range, inclusive of both ends. Time-of-day is ignored.
func (f *FestivalEvent) Contains(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(dateOnly(f.StartDate)) && !d.After(dateOnly(f.EndDate))
}

// IsFestivalDay returns true if the date falls within any festival range
func IsFestivalDay(date time.Time, festivals []*FestivalEvent) bool {
	for _, f := range festivals {
		if f.Contains(date) {
			return true
		}
	}
	return false
}

// dateOnly strips time-of-day so dates compare as calendar days
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
