// Package views holds the tab models of the TUI. Every view loads its data
// through a tea.Cmd and keeps the vehicle it shows in sync through
// ui.VehicleChangedMsg.
package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xolan/fuel/internal/cli"
	"github.com/xolan/fuel/internal/entry"
	"github.com/xolan/fuel/internal/tui/ui"
	"github.com/xolan/fuel/internal/units"
)

const noVehicleText = "No vehicle selected. Add one with 'fuel vehicle add <name>'."

// LogTableOptions configures how the log table is rendered
type LogTableOptions struct {
	Units    units.System
	Currency string
	Cursor   int // Selected row (-1 for none)
	Offset   int // First row shown
	Rows     int // Rows shown, 0 for all
}

// RenderLogTable renders processed entries as aligned columns with the
// sort indicator on the sorted column.
func RenderLogTable(entries []entry.Processed, sortCfg entry.SortConfig, styles ui.Styles, opts LogTableOptions) string {
	if len(entries) == 0 {
		return ""
	}

	head := func(label string, key entry.SortKey) string { return label + cli.SortIndicator(sortCfg, key) }
	dist, vol := opts.Units.DistanceUnit(), opts.Units.VolumeUnit()
	indexWidth := len(strconv.Itoa(len(entries))) + 2

	var b strings.Builder
	b.WriteString(styles.ColumnHead.Render(fmt.Sprintf("%*s   %-12s %14s %14s %12s %12s %12s",
		indexWidth, "",
		head("Date", entry.SortByDate),
		head("Odometer ("+dist+")", entry.SortByOdometer),
		head("Distance ("+dist+")", entry.SortByDistance),
		head("Fuel ("+vol+")", entry.SortByFuel),
		head("Price ("+opts.Currency+")", entry.SortByPrice),
		head("Total ("+opts.Currency+")", entry.SortByTotalSpend))))
	b.WriteString("\n")

	end := len(entries)
	if opts.Rows > 0 {
		end = min(end, opts.Offset+opts.Rows)
	}
	for i := max(opts.Offset, 0); i < end; i++ {
		e := entries[i]
		line := fmt.Sprintf("%*s %s %-12s %14s %14s %12s %12s %12s",
			indexWidth, fmt.Sprintf("[%d]", i+1),
			cli.FormatMarker(e),
			e.Date,
			cli.FormatOptional(e.OdometerReading, 2),
			cli.FormatOptional(e.DistanceTraveled, 2),
			cli.FormatOptional(e.Fuel, 2),
			cli.FormatOptional(e.Price, 3),
			cli.FormatOptional(e.TotalSpend, 2))

		style := styles.RowNormal
		switch {
		case i == opts.Cursor:
			style = styles.RowSelected
		case e.IsInvalid:
			style = styles.RowInvalid
		case e.IsFirst:
			style = styles.RowFirst
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// renderStatLine renders one label/value pair
func renderStatLine(styles ui.Styles, label, value string) string {
	return styles.StatLabel.Render(label) + " " + styles.StatValue.Render(value) + "\n"
}

// renderNotices renders notices one per line
func renderNotices(styles ui.Styles, notices []string) string {
	var b strings.Builder
	for _, n := range notices {
		b.WriteString(styles.Notice.Render(n))
		b.WriteString("\n")
	}
	return b.String()
}

// renderSelector renders names in one line with the selected one marked.
func renderSelector(styles ui.Styles, names []string, selected int) string {
	parts := make([]string, len(names))
	for i, n := range names {
		if i == selected {
			parts[i] = styles.TabActive.Render(n)
		} else {
			parts[i] = styles.TabInactive.Render(n)
		}
	}
	return strings.Join(parts, "")
}

// wrapIndex moves i by delta within n items, wrapping around.
func wrapIndex(i, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((i+delta)%n + n) % n
}
