// Package timeutil parses client supplied timestamps and renders stored
// instants in the blog's display zone (IST by default).
package timeutil

import (
	"errors"
	"strings"
	"time"
)

const (
	DefaultZone = "Asia/Kolkata"

	// istOffset is used when the tz database has no entry for the zone.
	istOffset = 5*time.Hour + 30*time.Minute
)

var ErrInvalidTime = errors.New("invalid time format")

// layouts without an offset are read in the display zone
var zonelessLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

type Clock struct {
	loc *time.Location
	now func() time.Time
}

// New returns a Clock for the named zone. Unknown names fall back to a fixed
// +05:30 zone.
func New(zone string) *Clock {
	if zone == "" {
		zone = DefaultZone
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		loc = time.FixedZone("IST", int(istOffset.Seconds()))
	}

	return &Clock{loc: loc, now: time.Now}
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c *Clock) In(t time.Time) time.Time {
	return t.In(c.loc)
}

// InPtr converts an optional instant.
func (c *Clock) InPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	v := t.In(c.loc)
	return &v
}

// Parse reads a timestamp sent by a client. An empty value or the literal
// "null" yields nil without error.
func (c *Clock) Parse(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" || value == "null" || value == "undefined" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return &t, nil
	}

	for _, layout := range zonelessLayouts {
		if t, err := time.ParseInLocation(layout, value, c.loc); err == nil {
			return &t, nil
		}
	}

	return nil, ErrInvalidTime
}

// ParseOrNow is Parse with the current time as the fallback for empty input.
func (c *Clock) ParseOrNow(value string) (time.Time, error) {
	t, err := c.Parse(value)
	if err != nil {
		return time.Time{}, err
	}

	if t == nil {
		return c.Now(), nil
	}

	return *t, nil
}
