package stats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Category names, in report order.
const (
	CategoryPrimary    = "Primary"
	CategoryTime       = "Time-Based"
	CategoryDistance   = "Distance"
	CategoryFuelCost   = "Fuel & Cost"
	CategoryEfficiency = "Efficiency"
	CategoryVolatility = "Volatility"
)

// NotAvailable marks a value that can't be computed yet.
const NotAvailable = "N/A"

// Stat is one labelled, formatted value.
type Stat struct {
	Label string
	Value string
}

// Category groups related statistics.
type Category struct {
	Name        string
	Description string
	Stats       []Stat
}

// Report is the formatted statistics for one vehicle. Values are final
// display strings; exporters write them as they are.
type Report struct {
	Categories []Category
}

// Category returns the named category, or nil.
func (r *Report) Category(name string) *Category {
	for i := range r.Categories {
		if r.Categories[i].Name == name {
			return &r.Categories[i]
		}
	}
	return nil
}

// Lookup returns the value of a statistic by category and label.
func (r *Report) Lookup(category, label string) (string, bool) {
	c := r.Category(category)
	if c == nil {
		return "", false
	}
	for _, s := range c.Stats {
		if s.Label == label {
			return s.Value, true
		}
	}
	return "", false
}

// MarshalJSON writes the report as nested objects keyed by category and
// label, keeping report order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.Categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeString(&buf, c.Name)
		buf.WriteString(":{")
		for j, s := range c.Stats {
			if j > 0 {
				buf.WriteByte(',')
			}
			writeString(&buf, s.Label)
			buf.WriteByte(':')
			writeString(&buf, s.Value)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeString appends s as a JSON string without HTML escaping, so
// "Fuel & Cost" stays readable.
func writeString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	buf.Truncate(buf.Len() - 1) // Encode appends a newline
}

func buildReport(s Summary, opts Options) *Report {
	dist := opts.Units.DistanceUnit()
	vol := opts.Units.VolumeUnit()
	eff := opts.Units.EfficiencyUnit()
	cur := opts.Currency

	money := func(v float64) string { return fmt.Sprintf("%s%.2f", cur, v) }
	distance := func(v float64) string { return fmt.Sprintf("%.2f %s", v, dist) }
	efficiency := func(v float64) string { return fmt.Sprintf("%.2f %s", v, eff) }
	rolling := func(v *float64) string {
		if v == nil {
			return NotAvailable
		}
		return efficiency(*v)
	}

	return &Report{Categories: []Category{
		{
			Name: CategoryPrimary,
			Stats: []Stat{
				{"Total Distance", distance(s.TotalDistance)},
				{"Total Fuel", fmt.Sprintf("%.2f %s", s.TotalFuel, vol)},
				{"Total Cost", money(s.TotalCost)},
				{"Average Efficiency", efficiency(s.AverageEfficiency)},
			},
		},
		{
			Name:        CategoryTime,
			Description: "Statistics related to the passage of time between entries.",
			Stats: []Stat{
				{"Total Days Tracked", fmt.Sprintf("%d days", int(math.Round(s.TotalDays)))},
				{"Average Days Between Entries", fmt.Sprintf("%.1f days", s.AverageGapDays)},
				{"Distance per Day", distance(s.DistancePerDay)},
				{"Fuel Cost per Day", money(s.CostPerDay)},
				{"Longest Gap Between Entries", fmt.Sprintf("%.0f days", s.LongestGapDays)},
			},
		},
		{
			Name:        CategoryDistance,
			Description: "Analysis of the distance traveled between each refuel.",
			Stats: []Stat{
				{"Average Distance per Entry", distance(s.AverageDistance)},
				{"Longest Distance on One Entry", distance(s.LongestDistance)},
				{"Shortest Distance on One Entry", distance(s.ShortestDistance)},
				{"Std. Dev. of Distance", distance(s.DistanceStdDev)},
			},
		},
		{
			Name:        CategoryFuelCost,
			Description: "Metrics about fuel volume, unit price, and total expenditure.",
			Stats: []Stat{
				{"Average Price per Unit", fmt.Sprintf("%s%.3f/%s", cur, s.AveragePricePerUnit, vol)},
				{"Average Cost per Entry", money(s.AverageCostPerEntry)},
				{"Most Expensive Entry", money(s.MostExpensiveEntry)},
				{"Cheapest Entry", money(s.CheapestEntry)},
				{"Cost per Distance", fmt.Sprintf("%s%.3f per %s", cur, s.CostPerDistance, dist)},
				{"Distance per Dollar", fmt.Sprintf("%.2f %s/%s", s.DistancePerCurrency, dist, cur)},
			},
		},
		{
			Name:        CategoryEfficiency,
			Description: "In-depth analysis of your vehicle's fuel efficiency trends.",
			Stats: []Stat{
				{"Best Efficiency", efficiency(s.BestEfficiency)},
				{"Worst Efficiency", efficiency(s.WorstEfficiency)},
				{"Median Efficiency", efficiency(s.MedianEfficiency)},
				{"Std. Dev. of Efficiency", efficiency(s.EfficiencyStdDev)},
				{"3-Entry Rolling Avg", rolling(s.Rolling3)},
				{"5-Entry Rolling Avg", rolling(s.Rolling5)},
			},
		},
		{
			Name:        CategoryVolatility,
			Description: "Measures the consistency of prices and costs over time. Higher numbers mean more fluctuation.",
			Stats: []Stat{
				{"Std. Dev. of Fuel Price", fmt.Sprintf("%s%.3f", cur, s.PriceStdDev)},
				{"Std. Dev. of Entry Cost", money(s.CostStdDev)},
			},
		},
	}}
}
