package task

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const layoutISO = "2006-01-02"

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(v string) (*Date, error) {
	t, err := time.Parse(layoutISO, v)
	if err != nil {
		return nil, err
	}
	return &Date{Time: t}, nil
}

// Date is a calendar day with no time component. The remote API exchanges due
// dates in YYYY-MM-DD form; timestamps with a time portion are truncated on
// unmarshal.
type Date struct {
	time.Time
}

// Today returns the current calendar day in local time.
func Today() Date {
	now := time.Now()
	return Date{Time: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)}
}

// After reports whether d falls on a later calendar day than then.
func (d Date) After(then Date) bool {
	return d.Time.Truncate(24 * time.Hour).After(then.Time.Truncate(24 * time.Hour))
}

// SameDay reports whether d and then are the same calendar day.
func (d Date) SameDay(then Date) bool {
	return d.Year() == then.Year() && d.Month() == then.Month() && d.Day() == then.Day()
}

func (d Date) String() string {
	return d.Format(layoutISO)
}

func (d *Date) MarshalJSON() ([]byte, error) {
	if d == nil || d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(fmt.Sprintf("%q", d.Format(layoutISO))), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	// Some responses carry a full timestamp; keep the day.
	if idx := strings.IndexByte(raw, 'T'); idx > 0 {
		raw = raw[:idx]
	}
	t, err := time.Parse(layoutISO, raw)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
