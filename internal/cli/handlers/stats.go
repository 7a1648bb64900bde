package handlers

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xolan/fuel/internal/cli"
	"github.com/xolan/fuel/internal/export"
	"github.com/xolan/fuel/internal/service"
	"github.com/xolan/fuel/internal/stats"
)

// seriesBarWidth is the width of the widest bar in a series chart.
const seriesBarWidth = 30

func computeStats(deps *cli.Deps, vehicle string) (*service.StatsResult, bool) {
	name, ok := resolveVehicle(deps, vehicle)
	if !ok {
		return nil, false
	}
	res, err := deps.Services.Stats.Compute(name)
	if err != nil {
		deps.Fail("Failed to compute statistics", err, "")
		return nil, false
	}
	return res, true
}

// ShowStats prints the statistics report, or only one category.
func ShowStats(deps *cli.Deps, vehicle, category string, asJSON bool) {
	res, ok := computeStats(deps, vehicle)
	if !ok {
		return
	}
	if !res.Stats.Available() {
		_, _ = fmt.Fprintln(deps.Stdout, stats.NeedMore(res.Stats.Needed, stats.SectionStats))
		return
	}

	report := res.Stats.Report
	categories := report.Categories
	if category != "" {
		idx := slices.IndexFunc(categories, func(c stats.Category) bool {
			return strings.EqualFold(c.Name, category)
		})
		if idx < 0 {
			names := make([]string, len(categories))
			for i, c := range categories {
				names[i] = c.Name
			}
			deps.Fail(fmt.Sprintf("Unknown category '%s'", category), nil, "Valid categories: "+strings.Join(names, ", "))
			return
		}
		categories = categories[idx : idx+1]
	}

	if asJSON {
		if err := export.WriteStatsJSON(deps.Stdout, &stats.Report{Categories: categories}); err != nil {
			deps.Fail("Failed to write statistics", err, "")
		}
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Statistics for %s:\n", res.Vehicle)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	for i, c := range categories {
		if i > 0 {
			_, _ = fmt.Fprintln(deps.Stdout)
		}
		_, _ = fmt.Fprintln(deps.Stdout, c.Name)
		if c.Description != "" {
			_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", c.Description)
		}
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
		for _, s := range c.Stats {
			_, _ = fmt.Fprintf(deps.Stdout, "  %-32s %s\n", s.Label+":", s.Value)
		}
	}
}

// ShowOwnership prints the total cost of ownership projection.
func ShowOwnership(deps *cli.Deps, vehicle string) {
	res, ok := computeStats(deps, vehicle)
	if !ok {
		return
	}
	if !res.Ownership.Available() {
		_, _ = fmt.Fprintln(deps.Stdout, stats.OwnershipNotice(res.Ownership))
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Total Cost of Ownership for %s:\n", res.Vehicle)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	for _, s := range res.Ownership.Lines(res.Currency) {
		_, _ = fmt.Fprintf(deps.Stdout, "  %-32s %s\n", s.Label+":", s.Value)
	}
}

// ShowNotices prints every notice that applies to the vehicle's log.
func ShowNotices(deps *cli.Deps, vehicle string) {
	name, ok := resolveVehicle(deps, vehicle)
	if !ok {
		return
	}
	log, err := deps.Services.Entry.Log(name, nil)
	if err != nil {
		deps.Fail("Failed to read fuel log", err, "")
		return
	}
	res, ok := computeStats(deps, name)
	if !ok {
		return
	}

	notices := append(slices.Clone(log.Notices), res.Notices()...)
	if len(notices) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No notices for %s\n", name)
		return
	}
	printNotices(deps.Stdout, notices)
}

// ShowSeries prints chart series as bar rows. An empty name prints all of
// them.
func ShowSeries(deps *cli.Deps, vehicle, name string) {
	res, ok := computeStats(deps, vehicle)
	if !ok {
		return
	}
	if res.Series == nil {
		_, _ = fmt.Fprintln(deps.Stdout, stats.NeedMore(res.Stats.Needed, stats.SectionSeries))
		return
	}

	series := res.Series
	if name != "" {
		s, found := stats.FindSeries(res.Series, name)
		if !found {
			deps.Fail(fmt.Sprintf("Unknown series '%s'", name), nil, "Valid series: "+strings.Join(stats.SeriesNames, ", "))
			return
		}
		series = []stats.Series{s}
	}

	for i, s := range series {
		if i > 0 {
			_, _ = fmt.Fprintln(deps.Stdout)
		}
		_, _ = fmt.Fprintln(deps.Stdout, s.Label)
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
		peak := 0.0
		for _, v := range s.Values() {
			peak = max(peak, v)
		}
		for _, p := range s.Points {
			_, _ = fmt.Fprintf(deps.Stdout, "  %s %-*s %s\n", p.Date, seriesBarWidth, cli.Bar(p.Value, peak, seriesBarWidth), cli.FormatNumber(p.Value, 2))
		}
	}
}
