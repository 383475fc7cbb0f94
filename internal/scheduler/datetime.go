package scheduler

import "time"

const (
	timeLayout        = "2006-01-02T15:04"
	timeLayoutSeconds = "2006-01-02T15:04:05"
)

// ParseDateTime parses a wall-clock timestamp such as
// "2025-03-15T09:00". A trailing seconds component is accepted.
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(timeLayoutSeconds, s)
}

// Overlaps reports whether two half-open intervals intersect. An
// interval ending exactly when another begins does not overlap.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && startB.Before(endA)
}
