package stats

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/xolan/fuel/internal/entry"
	"github.com/xolan/fuel/internal/units"
)

// Threshold is the number of usable entries needed before detailed
// statistics, series and ownership cost are produced.
const Threshold = 3

// DefaultCurrency prefixes monetary values in reports.
const DefaultCurrency = "$"

// Options controls how a report is computed and labelled.
type Options struct {
	Units    units.System
	Currency string
}

func (o Options) normalize() Options {
	if !o.Units.Valid() {
		o.Units = units.Default
	}
	if o.Currency == "" {
		o.Currency = DefaultCurrency
	}
	return o
}

// Summary holds the raw numbers behind a report.
type Summary struct {
	Count int `json:"count"`

	TotalDistance     float64 `json:"totalDistance"`
	TotalFuel         float64 `json:"totalFuel"`
	TotalCost         float64 `json:"totalCost"`
	AverageEfficiency float64 `json:"averageEfficiency"`

	TotalDays      float64 `json:"totalDays"`
	AverageGapDays float64 `json:"averageGapDays"`
	LongestGapDays float64 `json:"longestGapDays"`
	DistancePerDay float64 `json:"distancePerDay"`
	CostPerDay     float64 `json:"costPerDay"`

	AverageDistance  float64 `json:"averageDistance"`
	LongestDistance  float64 `json:"longestDistance"`
	ShortestDistance float64 `json:"shortestDistance"`
	DistanceStdDev   float64 `json:"distanceStdDev"`

	AveragePricePerUnit float64 `json:"averagePricePerUnit"`
	AverageCostPerEntry float64 `json:"averageCostPerEntry"`
	MostExpensiveEntry  float64 `json:"mostExpensiveEntry"`
	CheapestEntry       float64 `json:"cheapestEntry"`
	CostPerDistance     float64 `json:"costPerDistance"`
	DistancePerCurrency float64 `json:"distancePerCurrency"`

	BestEfficiency   float64  `json:"bestEfficiency"`
	WorstEfficiency  float64  `json:"worstEfficiency"`
	MedianEfficiency float64  `json:"medianEfficiency"`
	EfficiencyStdDev float64  `json:"efficiencyStdDev"`
	Rolling3         *float64 `json:"rolling3"`
	Rolling5         *float64 `json:"rolling5"`

	PriceStdDev float64 `json:"priceStdDev"`
	CostStdDev  float64 `json:"costStdDev"`
}

// Result is the outcome of Aggregate. Below Threshold, Summary and Report
// are nil and Needed says how many more usable entries are required;
// TotalFuelCost is always filled in.
type Result struct {
	Count         int
	Needed        int
	TotalFuelCost float64
	Summary       *Summary
	Report        *Report
}

// Available reports whether the detailed report was produced.
func (r Result) Available() bool {
	return r.Report != nil
}

// Aggregate computes the statistics for the usable entries of a log.
// Callers pass entry.Usable output; entries without distance or spend are
// skipped.
func Aggregate(usable []entry.Processed, opts Options) Result {
	opts = opts.normalize()
	logs := complete(usable)

	res := Result{Count: len(logs)}
	for _, e := range logs {
		res.TotalFuelCost += *e.TotalSpend
	}
	if len(logs) < Threshold {
		res.Needed = Threshold - len(logs)
		return res
	}

	s := summarize(logs, opts.Units)
	res.Summary = &s
	res.Report = buildReport(s, opts)
	return res
}

func complete(usable []entry.Processed) []entry.Processed {
	out := make([]entry.Processed, 0, len(usable))
	for _, e := range usable {
		if e.DistanceTraveled == nil || e.Fuel == nil || e.Price == nil || e.TotalSpend == nil || e.IsInvalid {
			continue
		}
		out = append(out, e)
	}
	return out
}

func summarize(logs []entry.Processed, sys units.System) Summary {
	n := len(logs)
	distances := make([]float64, n)
	fuels := make([]float64, n)
	prices := make([]float64, n)
	costs := make([]float64, n)
	effs := make([]float64, n)
	for i, e := range logs {
		distances[i] = *e.DistanceTraveled
		fuels[i] = *e.Fuel
		prices[i] = *e.Price
		costs[i] = *e.TotalSpend
		effs[i] = sys.Efficiency(distances[i], fuels[i])
	}

	s := Summary{Count: n}
	s.TotalDistance = floats.Sum(distances)
	s.TotalFuel = floats.Sum(fuels)
	s.TotalCost = floats.Sum(costs)
	if s.TotalFuel > 0 {
		s.AverageEfficiency = sys.Efficiency(s.TotalDistance, s.TotalFuel)
	}

	s.TotalDays = max(1, entry.DaysBetween(logs[0].Time, logs[n-1].Time))
	gaps := make([]float64, 0, n-1)
	for i := 1; i < n; i++ {
		gaps = append(gaps, entry.DaysBetween(logs[i-1].Time, logs[i].Time))
	}
	if len(gaps) > 0 {
		s.AverageGapDays = stat.Mean(gaps, nil)
		s.LongestGapDays = floats.Max(gaps)
	}
	s.DistancePerDay = s.TotalDistance / s.TotalDays
	s.CostPerDay = s.TotalCost / s.TotalDays

	s.AverageDistance = s.TotalDistance / float64(n)
	s.LongestDistance = floats.Max(distances)
	s.ShortestDistance = floats.Min(distances)
	s.DistanceStdDev = StdDev(distances)

	s.AveragePricePerUnit = ratio(s.TotalCost, s.TotalFuel)
	s.AverageCostPerEntry = s.TotalCost / float64(n)
	s.MostExpensiveEntry = floats.Max(costs)
	s.CheapestEntry = floats.Min(costs)
	s.CostPerDistance = ratio(s.TotalCost, s.TotalDistance)
	s.DistancePerCurrency = ratio(s.TotalDistance, s.TotalCost)

	if sys.HigherIsBetter() {
		s.BestEfficiency, s.WorstEfficiency = floats.Max(effs), floats.Min(effs)
	} else {
		s.BestEfficiency, s.WorstEfficiency = floats.Min(effs), floats.Max(effs)
	}
	s.MedianEfficiency = Median(effs)
	s.EfficiencyStdDev = StdDev(effs)
	s.Rolling3 = RollingAverage(effs, 3)
	s.Rolling5 = RollingAverage(effs, 5)

	s.PriceStdDev = StdDev(prices)
	s.CostStdDev = StdDev(costs)
	return s
}

// StdDev is the sample standard deviation (n-1 denominator). It is 0 for
// fewer than two values.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}

// Median of xs; xs is not modified. 0 for an empty slice.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := slices.Sorted(slices.Values(xs))
	mid := len(sorted) / 2
	if len(sorted)%2 != 0 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// RollingAverage is the mean of the last window values, or nil when there
// are fewer values than the window.
func RollingAverage(xs []float64, window int) *float64 {
	if window <= 0 || len(xs) < window {
		return nil
	}
	avg := stat.Mean(xs[len(xs)-window:], nil)
	return &avg
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
