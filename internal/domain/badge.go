package domain

import (
	"strconv"
	"time"
)

// Badge labels
const (
	BadgeInProgress = "In Progress"
	BadgeToday      = "Today!"
	BadgePast       = "Past"
)

// ShortDateLayout is the fixed month/day layout used on trip cards.
const ShortDateLayout = "Jan 2"

// DaysUntil returns the number of calendar days from the day of now to the
// day of start, both taken in now's location. Negative when start is in the past.
func DaysUntil(start, now time.Time) int {
	loc := now.Location()
	start = start.In(loc)

	// Compare calendar dates in UTC so 23h and 25h DST days still count as one.
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	return int(to.Sub(from).Hours() / 24)
}

// TripBadge returns the status label shown on a trip card.
func TripBadge(trip Trip, now time.Time) string {
	if trip.Status == TripStatusOngoing {
		return BadgeInProgress
	}

	days := DaysUntil(trip.StartDate, now)
	switch {
	case days == 0:
		return BadgeToday
	case days > 0:
		return strconv.Itoa(days) + " days away"
	default:
		return BadgePast
	}
}

// BadgeTone returns the color token for a trip's badge.
func BadgeTone(trip Trip, now time.Time) string {
	if trip.Status == TripStatusOngoing {
		return "green"
	}

	days := DaysUntil(trip.StartDate, now)
	switch {
	case days == 0:
		return "orange"
	case days > 0:
		return "blue"
	default:
		return "gray"
	}
}

// FormatShortDate formats t as "Jan 5".
func FormatShortDate(t time.Time) string {
	return t.Format(ShortDateLayout)
}

// FormatDateRange formats a trip's dates as "Jan 5 - Jan 12".
func FormatDateRange(trip Trip) string {
	return FormatShortDate(trip.StartDate) + " - " + FormatShortDate(trip.EndDate)
}

// Upcoming reports whether a trip is still ahead: not started, not
// finished and not cancelled. These are the trips listed as saved.
func Upcoming(trip Trip, now time.Time) bool {
	switch trip.Status {
	case TripStatusOngoing, TripStatusCompleted, TripStatusCancelled:
		return false
	}
	return DaysUntil(trip.StartDate, now) >= 0
}
