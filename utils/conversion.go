package utils

import (
	"time"
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
	// DateTimeLayout is the wire format for local date-times, matching the
	// frontend's "yyyy-MM-dd'T'HH:mm" payloads.
	DateTimeLayout = "2006-01-02T15:04"
	// DateTimeLayoutSeconds accepts the same format with seconds.
	DateTimeLayoutSeconds = "2006-01-02T15:04:05"
)

// ParseLocalDateTime parses an ISO-8601 local date-time, with or without
// seconds.
func ParseLocalDateTime(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateTimeLayoutSeconds, value, time.Local)
	if err == nil {
		return t, nil
	}
	t, err = time.ParseInLocation(DateTimeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, ValidationError{
			Field:   "bookingDate",
			Message: "must be an ISO-8601 local date-time (yyyy-MM-ddTHH:mm)",
		}
	}
	return t, nil
}

// ParseLocalDate parses a calendar date in yyyy-MM-dd form.
func ParseLocalDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, ValidationError{
			Field:   "date",
			Message: "must be a calendar date (yyyy-MM-dd)",
		}
	}
	return t, nil
}

// FormatDay renders the calendar-day key for a date-time.
func FormatDay(t time.Time) string {
	return t.Format(DateLayout)
}
