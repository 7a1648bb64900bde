package entry

import (
	"fmt"
	"slices"
	"strings"
)

// SortKey names a column of the log table.
type SortKey string

const (
	SortByDate       SortKey = "date"
	SortByOdometer   SortKey = "odometerReading"
	SortByDistance   SortKey = "distanceTraveled"
	SortByFuel       SortKey = "fuel"
	SortByPrice      SortKey = "price"
	SortByTotalSpend SortKey = "totalSpend"

	DefaultSortKey = SortByDate
)

// Sort directions.
const (
	SortAscending  = "asc"
	SortDescending = "desc"

	DefaultSortDirection = SortAscending
)

// SortKeys lists every valid sort key in column order.
var SortKeys = []SortKey{SortByDate, SortByOdometer, SortByDistance, SortByFuel, SortByPrice, SortByTotalSpend}

// SortConfig is the display order of the log table.
type SortConfig struct {
	Key       SortKey `json:"key"`
	Direction string  `json:"direction"`
}

// DefaultSort orders by date, oldest first.
func DefaultSort() SortConfig {
	return SortConfig{Key: DefaultSortKey, Direction: DefaultSortDirection}
}

// ParseSortKey matches a key case-insensitively. A few short aliases are
// accepted for the command line.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "date":
		return SortByDate, nil
	case "odometerreading", "odometer", "odo":
		return SortByOdometer, nil
	case "distancetraveled", "distance", "dist":
		return SortByDistance, nil
	case "fuel":
		return SortByFuel, nil
	case "price", "priceperunit":
		return SortByPrice, nil
	case "totalspend", "spend", "cost":
		return SortByTotalSpend, nil
	}
	return "", fmt.Errorf("unknown sort key %q (valid: date, odometer, distance, fuel, price, spend)", s)
}

// Toggle returns the config after selecting key: the same key flips the
// direction, a new key starts ascending.
func (c SortConfig) Toggle(key SortKey) SortConfig {
	if c.Key == key {
		if c.Direction == SortAscending {
			return SortConfig{Key: key, Direction: SortDescending}
		}
		return SortConfig{Key: key, Direction: SortAscending}
	}
	return SortConfig{Key: key, Direction: SortAscending}
}

// Normalize fills in defaults for an empty or unknown config.
func (c SortConfig) Normalize() SortConfig {
	if !slices.Contains(SortKeys, c.Key) {
		c.Key = DefaultSortKey
	}
	if c.Direction != SortAscending && c.Direction != SortDescending {
		c.Direction = DefaultSortDirection
	}
	return c
}

// Sort returns a sorted copy of entries for display. Numeric columns put
// missing values after every number when ascending; descending reverses
// the whole comparison. The derivation order is not affected.
func Sort(entries []Processed, cfg SortConfig) []Processed {
	cfg = cfg.Normalize()
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b Processed) int {
		var c int
		if cfg.Key == SortByDate {
			c = a.Time.Compare(b.Time)
		} else {
			c = compareOptional(column(a, cfg.Key), column(b, cfg.Key))
		}
		if cfg.Direction == SortDescending {
			return -c
		}
		return c
	})
	return out
}

func column(e Processed, key SortKey) *float64 {
	switch key {
	case SortByOdometer:
		return e.OdometerReading
	case SortByDistance:
		return e.DistanceTraveled
	case SortByFuel:
		return e.Fuel
	case SortByPrice:
		return e.Price
	case SortByTotalSpend:
		return e.TotalSpend
	}
	return nil
}

func compareOptional(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}
