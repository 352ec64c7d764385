// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

// DateLayout is the calendar date format used for workout records.
const DateLayout = "2006-01-02"

const secondsInAMinute = 60

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// RoundTo rounds t to the given number of decimal places.
func RoundTo(t float64, places int) float64 {
	p := math.Pow(10, float64(places))

	return math.Round(t*p) / p
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	mins = val / secondsInAMinute
	secs = val % secondsInAMinute

	return
}

// FormatClock renders elapsed seconds as MM:SS. Minutes are not capped at 59.
func FormatClock(elapsed int) string {
	mins, secs := SecsToMinsAndSecs(elapsed)

	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// DateKey returns the local calendar date of t as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.Format(time.RFC3339Nano))
}

// FromStr parses an absolute or relative date ("2024-03-01", "yesterday",
// "2 weeks ago") relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dps.Configuration{
		CurrentTime: now,
	}

	dt, err := dps.Parse(cfg, s)
	if err != nil {
		return time.Time{}, err
	}

	if dt.Time.IsZero() {
		return time.Time{}, fmt.Errorf("unable to parse date %q", s)
	}

	return dt.Time, nil
}
