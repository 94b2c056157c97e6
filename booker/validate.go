package booker

import (
	"time"
)

const (
	msgRequired = "Invalid date: Start date and end date are required."
	msgParsable = "Invalid date: Start date and end date must be valid dates."
	msgFuture   = "Invalid date: Start date and end date must be in the future."
	msgOrder    = "Invalid date: End date must be after the start date."
)

// dateLayouts are tried in order. All but RFC 3339 are read in the caller's location.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

// ParseDate reads a calendar date (or date-time) the way the booking form sends it.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Validate checks d against the booking rules in order and reports the
// first violation. loc defaults to time.Local.
func Validate(d Draft, now time.Time, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}

	if d.StartDate == "" || d.EndDate == "" {
		return &ValidationError{Rule: RuleRequired, Message: msgRequired}
	}

	start, okStart := ParseDate(d.StartDate, loc)
	end, okEnd := ParseDate(d.EndDate, loc)
	if !okStart || !okEnd {
		return &ValidationError{Rule: RuleParsable, Message: msgParsable}
	}

	if start.Before(now) || end.Before(now) {
		return &ValidationError{Rule: RuleFuture, Message: msgFuture}
	}

	// same-day checkout is allowed
	if end.Before(start) {
		return &ValidationError{Rule: RuleOrder, Message: msgOrder}
	}
	return nil
}
