// Package units holds the two measurement systems, their display labels
// and the transform that rewrites stored entries from one to the other.
package units

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xolan/fuel/internal/entry"
)

// System is a measurement convention for distance and volume.
type System string

const (
	Metric   System = "metric"
	Imperial System = "imperial"
)

// Default is used when no preference has been stored.
const Default = Metric

// Conversion factors. Price is currency per unit volume, so it moves
// with the inverse of the volume factor.
const (
	KmToMiles       = 0.621371
	LitersToGallons = 0.264172
)

// Rounding applied to converted and displayed values.
const (
	DistanceDecimals = 2
	VolumeDecimals   = 2
	PriceDecimals    = 3
)

// Parse accepts "metric" or "imperial" in any case.
func Parse(s string) (System, error) {
	switch System(strings.ToLower(strings.TrimSpace(s))) {
	case Metric:
		return Metric, nil
	case Imperial:
		return Imperial, nil
	}
	return "", fmt.Errorf("unknown unit system %q (use metric or imperial)", s)
}

// Valid reports whether s is a known system.
func (s System) Valid() bool {
	return s == Metric || s == Imperial
}

// DistanceUnit is the short distance label (km or mi).
func (s System) DistanceUnit() string {
	if s == Imperial {
		return "mi"
	}
	return "km"
}

// DistanceUnitLong is the label used in the log table.
func (s System) DistanceUnitLong() string {
	if s == Imperial {
		return "miles"
	}
	return "km"
}

// VolumeUnit is L or gal.
func (s System) VolumeUnit() string {
	if s == Imperial {
		return "gal"
	}
	return "L"
}

// EfficiencyUnit is MPG or L/100km.
func (s System) EfficiencyUnit() string {
	if s == Imperial {
		return "MPG"
	}
	return "L/100km"
}

// HigherIsBetter reports the direction of the efficiency figure. MPG
// grows with better economy, L/100km shrinks.
func (s System) HigherIsBetter() bool {
	return s == Imperial
}

// Efficiency returns distance per volume for imperial and volume per 100
// distance for metric.
func (s System) Efficiency(distance, fuel float64) float64 {
	if s == Imperial {
		return distance / fuel
	}
	return fuel / distance * 100
}

// Round rounds f half away from zero to places decimals.
func Round(f float64, places int32) float64 {
	r, _ := decimal.NewFromFloat(f).Round(places).Float64()
	return r
}

// Convert rewrites each entry's odometer, fuel and price from one system
// to the other and rounds the results to display precision, since the
// rounded values are what gets stored. Fields that don't parse are left
// as they are. Converting to the same system returns a copy.
func Convert(entries []entry.RawEntry, from, to System) []entry.RawEntry {
	out := make([]entry.RawEntry, len(entries))
	copy(out, entries)
	if from == to {
		return out
	}

	distance, volume := 1/KmToMiles, 1/LitersToGallons
	if from == Metric && to == Imperial {
		distance, volume = KmToMiles, LitersToGallons
	}

	for i, e := range out {
		out[i] = entry.RawEntry{
			Date:            e.Date,
			OdometerReading: scale(e.OdometerReading, distance, DistanceDecimals),
			Fuel:            scale(e.Fuel, volume, VolumeDecimals),
			Price:           scale(e.Price, 1/volume, PriceDecimals),
		}
	}
	return out
}

// ConvertValues converts a single reading set, as typed on the command line.
func ConvertValues(odometer, fuel, price float64, from, to System) (float64, float64, float64) {
	e := Convert([]entry.RawEntry{{
		OdometerReading: entry.Number(odometer),
		Fuel:            entry.Number(fuel),
		Price:           entry.Number(price),
	}}, from, to)[0]
	o, _ := e.OdometerReading.Float()
	f, _ := e.Fuel.Float()
	p, _ := e.Price.Float()
	return o, f, p
}

func scale(v entry.Value, factor float64, places int32) entry.Value {
	f, ok := v.Float()
	if !ok {
		return v
	}
	return entry.Number(Round(f*factor, places))
}
