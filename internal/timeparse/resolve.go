// Package timeparse turns loose time phrases ("6 PM", "tomorrow at 9:30am")
// into absolute timestamps.
package timeparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISOLayout matches the millisecond UTC form browsers emit for Date.toISOString.
const ISOLayout = "2006-01-02T15:04:05.000Z"

var clockPattern = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)

// Resolve converts phrase into an absolute time relative to now, in now's
// location.
//
// "tomorrow" anywhere in the phrase moves the date forward one day. The first
// hour[:minute][am|pm] found sets the clock (seconds and sub-seconds zeroed).
// When the phrase does not say tomorrow and that clock time has already
// passed, the result rolls forward one day.
//
// ok is false when no hour could be found; the returned time is then now
// (plus a day for "tomorrow") with its clock untouched.
func Resolve(phrase string, now time.Time) (t time.Time, ok bool) {
	tomorrow := strings.Contains(strings.ToLower(phrase), "tomorrow")
	target := now
	if tomorrow {
		target = target.AddDate(0, 0, 1)
	}

	m := clockPattern.FindStringSubmatch(phrase)
	if m == nil {
		return target, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	switch strings.ToLower(m[3]) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	target = time.Date(target.Year(), target.Month(), target.Day(), hour, minute, 0, 0, target.Location())
	if !tomorrow && target.Before(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target, true
}

// FormatISO renders t in UTC using ISOLayout.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}
