package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ledger key format.
const DateLayout = "2006-01-02"

// TimestampLayout is the minute-precision local timestamp format used on disk
// and in form inputs.
const TimestampLayout = "2006-01-02T15:04"

var timestampLayouts = []string{
	TimestampLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// DateKey returns the local calendar date of t as a ledger key.
// Every "today" in kcal goes through this function.
func DateKey(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// ParseDateKey parses a YYYY-MM-DD key as local midnight.
func ParseDateKey(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseTimestamp parses user or stored timestamps, truncated to the minute.
// Zone-less forms are read as local time.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.Truncate(time.Minute), nil
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Local().Truncate(time.Minute), nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q, want YYYY-MM-DDTHH:MM", s)
}

// Timestamp is a local wall-clock time stored at minute precision.
type Timestamp struct {
	time.Time
}

// At wraps t as a Timestamp, dropping seconds.
func At(t time.Time) Timestamp {
	return Timestamp{Time: t.Local().Truncate(time.Minute)}
}

// String formats the timestamp as YYYY-MM-DDTHH:MM.
func (ts Timestamp) String() string {
	if ts.IsZero() {
		return ""
	}
	return ts.Local().Format(TimestampLayout)
}

// DateKey returns the ledger key the timestamp falls on.
func (ts Timestamp) DateKey() string {
	return DateKey(ts.Time)
}

// Clock returns the HH:MM label used on daily charts.
func (ts Timestamp) Clock() string {
	return ts.Local().Format("15:04")
}

// MarshalJSON writes the minute-precision form rather than RFC 3339.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

// UnmarshalJSON accepts any form ParseTimestamp does.
func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	return ts.UnmarshalText([]byte(s))
}

// MarshalText implements encoding.TextMarshaler.
func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ts *Timestamp) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		ts.Time = time.Time{}
		return nil
	}
	t, err := ParseTimestamp(string(b))
	if err != nil {
		return err
	}
	ts.Time = t
	return nil
}
