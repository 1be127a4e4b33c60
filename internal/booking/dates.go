package booking

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// ParseDate reads "2006-01-02" or an RFC 3339 timestamp and returns the
// calendar day at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse %q: %w", s, ErrInvalidDate)
		}
	}

	return Day(t), nil
}

// Day truncates t to midnight UTC of its own calendar date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Nights is the ceiling of the absolute distance between the two instants in
// whole days.
func Nights(checkIn, checkOut time.Time) int {
	hours := math.Abs(checkOut.Sub(checkIn).Hours())

	return int(math.Ceil(hours / 24)) //nolint:gomnd
}

// NightsBetween is Nights over raw form values; unparsable input counts as 0.
func NightsBetween(checkIn, checkOut string) int {
	in, err := ParseDate(checkIn)
	if err != nil {
		return 0
	}

	out, err := ParseDate(checkOut)
	if err != nil {
		return 0
	}

	return Nights(in, out)
}

// StayDates lists every night of the half-open range [checkIn, checkOut).
func StayDates(checkIn, checkOut time.Time) []time.Time {
	var dates []time.Time

	for d := Day(checkIn); d.Before(Day(checkOut)); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	return dates
}
