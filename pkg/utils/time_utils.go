// utils/timeutil.go
package utils

import (
	"time"
	_ "time/tzdata"
)

// Netherlands time location (CET/CEST)
var nlLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Europe/Amsterdam"); err == nil {
		return loc
	}
	return time.FixedZone("CET", 1*3600)
}()

type Clock interface {
	Now() time.Time
}

// SystemClock reports the wall clock in UTC, which is what we store.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always reports T. Tests move it forward with Advance.
type FixedClock struct {
	T time.Time
}

func (c *FixedClock) Now() time.Time { return c.T }

func (c *FixedClock) Advance(d time.Duration) { c.T = c.T.Add(d) }

func NLLocation() *time.Location { return nlLoc }

func FormatRFC3339NL(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(nlLoc).Format(time.RFC3339) // e.g. 2025-05-24T09:30:00+02:00
}

func FormatDisplayNL(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(nlLoc).Format("02-01-2006 15:04")
}

// SecondsUntil is the whole number of seconds left before t, never negative.
func SecondsUntil(now, t time.Time) int64 {
	d := t.Sub(now)
	if d <= 0 {
		return 0
	}
	return int64(d / time.Second)
}
