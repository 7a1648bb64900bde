package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/xolan/fuel/internal/cli"
	"github.com/xolan/fuel/internal/export"
	"github.com/xolan/fuel/internal/importer"
	"github.com/xolan/fuel/internal/service"
)

// What an export writes.
const (
	ExportLog    = "log"
	ExportStats  = "stats"
	ExportSeries = "series"
)

// ImportEntries replaces the vehicle's log with the contents of a .json or
// .csv file.
func ImportEntries(deps *cli.Deps, vehicle, path string, skipConfirm bool) {
	name, ok := resolveVehicle(deps, vehicle)
	if !ok {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		deps.Fail("Failed to read file", err, "")
		return
	}

	existing, err := deps.Services.Entry.Raw(name)
	if err != nil {
		deps.Fail("Failed to read fuel log", err, "")
		return
	}
	if len(existing) > 0 && !skipConfirm {
		question := fmt.Sprintf("Replace the %s of %s?", cli.Count(len(existing), "entry"), name)
		if !promptConfirmation(deps.Stdout, deps.Stdin, question) {
			_, _ = fmt.Fprintln(deps.Stdout, "Import cancelled")
			return
		}
	}

	res, err := deps.Services.Transfer.Import(name, path, data)
	if err != nil {
		switch {
		case errors.Is(err, importer.ErrUnsupportedFormat):
			deps.Fail("Unsupported file format", err, "Import a .json or .csv file")
		case errors.Is(err, importer.ErrInvalidJSON),
			errors.Is(err, importer.ErrTooFewLines),
			errors.Is(err, importer.ErrMissingHeaders):
			deps.Fail("Failed to parse file", err, "No changes were made")
		default:
			deps.Fail("Failed to import file", err, "")
		}
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Imported %s into %s\n", cli.Count(len(res.Entries), "entry"), name)
	if res.Dropped > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Skipped %s without a date or with non-numeric values\n", cli.Count(res.Dropped, "row"))
	}
}

// Export writes the log, statistics or series of a vehicle to output, or
// to stdout when output is empty. Nothing is written on failure.
func Export(deps *cli.Deps, vehicle, what, format, output string) {
	name, ok := resolveVehicle(deps, vehicle)
	if !ok {
		return
	}

	var buf bytes.Buffer
	var err error
	switch what {
	case ExportLog:
		err = deps.Services.Transfer.ExportLog(&buf, name, format)
	case ExportStats:
		err = deps.Services.Transfer.ExportStats(&buf, name, format)
	case ExportSeries:
		err = deps.Services.Transfer.ExportSeries(&buf, name)
	default:
		deps.Fail(fmt.Sprintf("Unknown export '%s'", what), nil, "Export one of: log, stats, series")
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, export.ErrNoEntries):
			deps.Fail("No log data to export", nil, "Add entries with 'fuel add' or 'fuel import'")
		case errors.Is(err, export.ErrNoStats):
			deps.Fail("No statistics to export, add more data", nil, "See what is missing with 'fuel notices'")
		default:
			deps.Fail("Failed to export", err, fmt.Sprintf("Supported formats: %s, %s", service.FormatJSON, service.FormatCSV))
		}
		return
	}

	if output == "" {
		_, _ = deps.Stdout.Write(buf.Bytes())
		return
	}
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		deps.Fail("Failed to write export file", err, "")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Exported %s of %s to %s\n", what, name, output)
}
