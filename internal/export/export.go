// Package export writes a vehicle's log and statistics as JSON or CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xolan/fuel/internal/entry"
	"github.com/xolan/fuel/internal/stats"
)

var (
	ErrNoEntries = errors.New("no log data to export")
	ErrNoStats   = errors.New("no statistics to export, add more data")
)

// LogCSVHeader is the header row of a log CSV export.
var LogCSVHeader = []string{"Date", "OdometerReading", "DistanceTraveled", "Fuel", "PricePerUnit", "TotalSpend"}

// WriteLogJSON writes the raw entries exactly as stored, indented.
func WriteLogJSON(w io.Writer, raws []entry.RawEntry) error {
	if len(raws) == 0 {
		return ErrNoEntries
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(raws)
}

// WriteLogCSV writes the processed entries in date order. Missing values
// are written as N/A.
func WriteLogCSV(w io.Writer, raws []entry.RawEntry) error {
	if len(raws) == 0 {
		return ErrNoEntries
	}
	processed := entry.Process(raws)

	writer := csv.NewWriter(w)
	if err := writer.Write(LogCSVHeader); err != nil {
		return err
	}
	for _, e := range processed.Entries {
		row := []string{
			e.Date,
			fixed(e.OdometerReading, 2),
			fixed(e.DistanceTraveled, 2),
			fixed(e.Fuel, 2),
			fixed(e.Price, 3),
			fixed(e.TotalSpend, 2),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func fixed(v *float64, places int) string {
	if v == nil {
		return stats.NotAvailable
	}
	return strconv.FormatFloat(*v, 'f', places, 64)
}

// WriteStatsJSON writes the report grouped by category, indented.
func WriteStatsJSON(w io.Writer, report *stats.Report) error {
	if report == nil || len(report.Categories) == 0 {
		return ErrNoStats
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// WriteStatsCSV writes one quoted row per statistic with a blank line
// after each category.
func WriteStatsCSV(w io.Writer, report *stats.Report) error {
	if report == nil || len(report.Categories) == 0 {
		return ErrNoStats
	}
	if _, err := io.WriteString(w, "Category,Statistic,Value\n"); err != nil {
		return err
	}
	for _, c := range report.Categories {
		for _, s := range c.Stats {
			if _, err := fmt.Fprintf(w, "%s,%s,%s\n", quote(c.Name), quote(s.Label), quote(s.Value)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// WriteSeriesCSV writes every series as date,series,value rows.
func WriteSeriesCSV(w io.Writer, series []stats.Series) error {
	if len(series) == 0 {
		return ErrNoStats
	}
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Date", "Series", "Value"}); err != nil {
		return err
	}
	for _, s := range series {
		for _, p := range s.Points {
			if err := writer.Write([]string{p.Date, s.Name, strconv.FormatFloat(p.Value, 'f', 2, 64)}); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}
