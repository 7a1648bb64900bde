package entry

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format entries are stored with.
const DateLayout = "2006-01-02"

// Value is a numeric field exactly as stored. Records written by older
// versions or by hand may contain numbers, numeric strings, free text or
// null; the raw text is kept so a malformed value survives a save and can
// be flagged by the derivation pass instead of failing the whole load.
// The empty Value means the field is missing.
type Value string

// Number returns the Value holding f.
func Number(f float64) Value {
	return Value(strconv.FormatFloat(f, 'f', -1, 64))
}

// Float parses the value. ok is false for missing, non-numeric or
// non-finite values.
func (v Value) Float() (f float64, ok bool) {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// IsNumber reports whether the value parses as a finite number.
func (v Value) IsNumber() bool {
	_, ok := v.Float()
	return ok
}

// Equal compares two values numerically when both parse, textually otherwise.
func (v Value) Equal(o Value) bool {
	a, okA := v.Float()
	b, okB := o.Float()
	if okA && okB {
		return a == b
	}
	return strings.TrimSpace(string(v)) == strings.TrimSpace(string(o))
}

// MarshalJSON writes numbers as JSON numbers, missing values as null and
// anything else as the original string.
func (v Value) MarshalJSON() ([]byte, error) {
	if v == "" {
		return []byte("null"), nil
	}
	if f, ok := v.Float(); ok {
		return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
	}
	return json.Marshal(string(v))
}

// UnmarshalJSON accepts any JSON value. Non-string tokens keep their
// literal text and only parse when they are numbers.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value(s)
		return nil
	}
	*v = Value(data)
	return nil
}

// RawEntry is one fuel purchase as stored. Entries have no identifier;
// two entries are the same entry when all four fields are equal.
type RawEntry struct {
	Date            string `json:"date"`
	OdometerReading Value  `json:"odometerReading"`
	Fuel            Value  `json:"fuel"`
	Price           Value  `json:"price"`
}

// Equal reports value equality on all four fields.
func (e RawEntry) Equal(o RawEntry) bool {
	return strings.TrimSpace(e.Date) == strings.TrimSpace(o.Date) &&
		e.OdometerReading.Equal(o.OdometerReading) &&
		e.Fuel.Equal(o.Fuel) &&
		e.Price.Equal(o.Price)
}

// New builds a well-formed RawEntry.
func New(date time.Time, odometer, fuel, price float64) RawEntry {
	return RawEntry{
		Date:            date.Format(DateLayout),
		OdometerReading: Number(odometer),
		Fuel:            Number(fuel),
		Price:           Number(price),
	}
}

// ParseStoredDate parses a stored date. Full RFC 3339 timestamps are
// accepted and truncated to their calendar date.
func ParseStoredDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// DaysBetween returns the number of days from a to b.
func DaysBetween(a, b time.Time) float64 {
	return b.Sub(a).Hours() / 24
}
