package stats

import (
	"fmt"

	"github.com/xolan/fuel/internal/entry"
	"github.com/xolan/fuel/internal/units"
)

// Series names.
const (
	SeriesEfficiency         = "efficiency"
	SeriesCost               = "cost"
	SeriesCostPerDistance    = "costPerDistance"
	SeriesFuelPrice          = "fuelPrice"
	SeriesFuelVolume         = "fuelVolume"
	SeriesCumulativeDistance = "cumulativeDistance"
)

// SeriesNames lists the series in display order.
var SeriesNames = []string{
	SeriesEfficiency,
	SeriesCost,
	SeriesCostPerDistance,
	SeriesFuelPrice,
	SeriesFuelVolume,
	SeriesCumulativeDistance,
}

// Point is one dated value of a series.
type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Series is a labelled sequence of points, one per usable entry.
type Series struct {
	Name   string  `json:"name"`
	Label  string  `json:"label"`
	Points []Point `json:"points"`
	// Inverted is set when smaller values are better, so a renderer can
	// flip its axis.
	Inverted bool `json:"inverted,omitempty"`
}

// Values returns the point values.
func (s Series) Values() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Value
	}
	return out
}

// BuildSeries returns the chart series for the usable entries, or nil
// when there are fewer than Threshold of them.
func BuildSeries(usable []entry.Processed, opts Options) []Series {
	opts = opts.normalize()
	logs := complete(usable)
	if len(logs) < Threshold {
		return nil
	}
	sys := opts.Units
	cur := opts.Currency

	distName, volName := "KM", "Liter"
	volPlural, distPlural := "Liters", "km"
	if sys == units.Imperial {
		distName, volName = "Mile", "Gallon"
		volPlural, distPlural = "Gallons", "miles"
	}

	all := []Series{
		{Name: SeriesEfficiency, Label: sys.EfficiencyUnit(), Inverted: !sys.HigherIsBetter()},
		{Name: SeriesCost, Label: fmt.Sprintf("Cost per Entry (%s)", cur)},
		{Name: SeriesCostPerDistance, Label: fmt.Sprintf("Cost per %s (%s)", distName, cur)},
		{Name: SeriesFuelPrice, Label: fmt.Sprintf("Price per %s (%s)", volName, cur)},
		{Name: SeriesFuelVolume, Label: fmt.Sprintf("Fuel Volume (%s)", volPlural)},
		{Name: SeriesCumulativeDistance, Label: fmt.Sprintf("Cumulative Distance (%s)", distPlural)},
	}

	cumulative := 0.0
	for _, e := range logs {
		d, f, p, c := *e.DistanceTraveled, *e.Fuel, *e.Price, *e.TotalSpend
		cumulative += d
		values := []float64{sys.Efficiency(d, f), c, c / d, p, f, cumulative}
		for i, v := range values {
			all[i].Points = append(all[i].Points, Point{Date: e.Date, Value: v})
		}
	}
	return all
}

// FindSeries returns the series with the given name.
func FindSeries(all []Series, name string) (Series, bool) {
	for _, s := range all {
		if s.Name == name {
			return s, true
		}
	}
	return Series{}, false
}
