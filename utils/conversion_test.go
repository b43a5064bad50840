package utils

import (
	"errors"
	"testing"
	"time"
)

func TestParseLocalDateTime(t *testing.T) {
	got, err := ParseLocalDateTime("2024-06-01T09:30")
	if err != nil {
		t.Fatalf("ParseLocalDateTime failed: %v", err)
	}
	want := time.Date(2024, 6, 1, 9, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	withSeconds, err := ParseLocalDateTime("2024-06-01T09:30:45")
	if err != nil {
		t.Fatalf("ParseLocalDateTime with seconds failed: %v", err)
	}
	if withSeconds.Second() != 45 {
		t.Errorf("seconds = %d, want 45", withSeconds.Second())
	}
}

func TestParseLocalDateTimeRejectsGarbage(t *testing.T) {
	var validation ValidationError
	for _, bad := range []string{"", "June 1st", "2024-06-01", "2024-13-01T09:00"} {
		if _, err := ParseLocalDateTime(bad); !errors.As(err, &validation) {
			t.Errorf("ParseLocalDateTime(%q): err = %v, want ValidationError", bad, err)
		}
	}
}

func TestParseLocalDate(t *testing.T) {
	got, err := ParseLocalDate("2024-06-01")
	if err != nil {
		t.Fatalf("ParseLocalDate failed: %v", err)
	}
	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	var validation ValidationError
	if _, err := ParseLocalDate("01/06/2024"); !errors.As(err, &validation) {
		t.Errorf("err = %v, want ValidationError", err)
	}
}

func TestFormatDayRoundTrip(t *testing.T) {
	at := time.Date(2024, 6, 1, 23, 59, 0, 0, time.Local)
	if got := FormatDay(at); got != "2024-06-01" {
		t.Errorf("FormatDay = %q, want 2024-06-01", got)
	}
}
