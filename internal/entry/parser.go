package entry

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Errors returned when manual input can't be turned into an entry.
var (
	ErrEmptyField = errors.New("field cannot be empty")
	ErrNotNumber  = errors.New("value is not a number")
	ErrNegative   = errors.New("value cannot be negative")
	ErrBadDate    = errors.New("invalid date")
)

// Input is the textual form of an entry as typed by the user.
type Input struct {
	Date     string
	Odometer string
	Fuel     string
	Price    string
}

// ParseInput validates every field of a manually entered fill-up. All four
// fields are required. Dates may be written as YYYY-MM-DD or DD/MM/YYYY
// and are stored in ISO form.
func ParseInput(in Input) (RawEntry, error) {
	date, err := ParseDate(in.Date)
	if err != nil {
		return RawEntry{}, err
	}
	odo, err := parseField("odometer", in.Odometer)
	if err != nil {
		return RawEntry{}, err
	}
	fuel, err := parseField("fuel", in.Fuel)
	if err != nil {
		return RawEntry{}, err
	}
	price, err := parseField("price", in.Price)
	if err != nil {
		return RawEntry{}, err
	}
	return New(date, odo, fuel, price), nil
}

// Validate checks that a stored-form entry has every field filled in
// with a number and a readable date. Bulk edits use it to reject the
// whole change when any row is incomplete.
func Validate(e RawEntry) error {
	if strings.TrimSpace(e.Date) == "" {
		return fmt.Errorf("%w: date", ErrEmptyField)
	}
	if _, ok := ParseStoredDate(e.Date); !ok {
		return fmt.Errorf("%w '%s' (use YYYY-MM-DD)", ErrBadDate, e.Date)
	}
	fields := []struct {
		name string
		v    Value
	}{
		{"odometer", e.OdometerReading},
		{"fuel", e.Fuel},
		{"price", e.Price},
	}
	for _, f := range fields {
		if _, err := parseField(f.name, string(f.v)); err != nil {
			return err
		}
	}
	return nil
}

func parseField(name, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: %s", ErrEmptyField, name)
	}
	f, ok := Value(s).Float()
	if !ok {
		return 0, fmt.Errorf("%w: %s '%s'", ErrNotNumber, name, s)
	}
	if f < 0 {
		return 0, fmt.Errorf("%w: %s %s", ErrNegative, name, strconv.FormatFloat(f, 'f', -1, 64))
	}
	return f, nil
}

var (
	isoPartialRe  = regexp.MustCompile(`^\d{4}-\d{1,2}$`)
	yearOnlyRe    = regexp.MustCompile(`^\d{4}$`)
	euroPartialRe = regexp.MustCompile(`^\d{1,2}/\d{1,2}$`)
)

// ParseDate parses a date in YYYY-MM-DD or DD/MM/YYYY format. ISO is tried
// first so ambiguous input like 05/06/2024 is never read as month-first.
func ParseDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("%w: date (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15 or 15/01/2024)", ErrEmptyField)
	}
	if t, err := time.Parse(DateLayout, input); err == nil {
		return t, nil
	}
	if t, err := time.Parse("02/01/2006", input); err == nil {
		return t, nil
	}

	switch {
	case yearOnlyRe.MatchString(input):
		return time.Time{}, fmt.Errorf("%w '%s': missing month and day (use format YYYY-MM-DD, e.g., %s-01-15)", ErrBadDate, input, input)
	case isoPartialRe.MatchString(input):
		return time.Time{}, fmt.Errorf("%w '%s': missing day (use format YYYY-MM-DD, e.g., %s-15)", ErrBadDate, input, input)
	case euroPartialRe.MatchString(input):
		return time.Time{}, fmt.Errorf("%w '%s': missing year (use format DD/MM/YYYY, e.g., %s/2024)", ErrBadDate, input, input)
	default:
		return time.Time{}, fmt.Errorf("%w '%s' (use YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15 or 15/01/2024)", ErrBadDate, input)
	}
}
