package todo

import (
	"errors"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// Week is the horizon over which a deadline raises urgency.
const Week = 7 * 24 * time.Hour

// ParseDeadline parses YYYY-MM-DD or YYYY-MM-DD HH:MM in local time.
// A date without a time means midnight.
func ParseDeadline(s string) (time.Time, error) {
	return ParseDeadlineIn(s, time.Local)
}

// ParseDeadlineIn is ParseDeadline with an explicit location.
func ParseDeadlineIn(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		return time.Time{}, &DeadlineParseError{Input: s, Err: errors.New("no time zone")}
	}
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(dateTimeLayout, s, loc)
	if err != nil {
		return time.Time{}, &DeadlineParseError{Input: s, Err: err}
	}
	return t, nil
}

// Urgency scores how close a deadline is, from 0.0 (none, or a week or more
// away) to 1.0 (due now or overdue). Between those it falls linearly with the
// minutes remaining.
func Urgency(deadline *time.Time, now time.Time) float64 {
	if deadline == nil {
		return 0.0
	}
	diff := deadline.Sub(now)
	switch {
	case diff <= 0:
		return 1.0
	case diff >= Week:
		return 0.0
	default:
		return 1.0 - diff.Minutes()/Week.Minutes()
	}
}

// TimePtr returns a pointer to t, for optional fields.
func TimePtr(t time.Time) *time.Time {
	return &t
}
