package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the text form of every stored and serialized timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// Timestamp is a UTC instant with whole-second precision. It renders as
// TimestampLayout in JSON and when bound as a SQL parameter.
type Timestamp struct {
	time.Time
}

// Now returns the current UTC time truncated to the second, so a value
// survives a store/load round trip unchanged.
func Now() Timestamp {
	return Timestamp{time.Now().UTC().Truncate(time.Second)}
}

// ParseTimestamp parses s in TimestampLayout as UTC.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	if err != nil {
		return Timestamp{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return Timestamp{t}, nil
}

// MustParseTimestamp is ParseTimestamp for values read back from storage.
// The service writes every stored timestamp itself, so a value that does not
// parse means corrupted data and it panics.
func MustParseTimestamp(s string) Timestamp {
	ts, err := ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func (t Timestamp) String() string {
	return t.UTC().Format(TimestampLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer.
func (t Timestamp) Value() (driver.Value, error) {
	return t.String(), nil
}
