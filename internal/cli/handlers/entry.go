package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xolan/fuel/internal/cli"
	"github.com/xolan/fuel/internal/entry"
	"github.com/xolan/fuel/internal/service"
)

// LogOptions selects the log order. An empty Sort keeps the saved order.
type LogOptions struct {
	Sort   string
	Desc   bool
	Toggle bool
}

// AddEntry validates a manually entered fill-up and appends it to the log.
func AddEntry(deps *cli.Deps, vehicle string, in entry.Input) {
	name, ok := resolveVehicle(deps, vehicle)
	if !ok {
		return
	}

	e, err := deps.Services.Entry.Add(name, in)
	if err != nil {
		deps.Fail("Please ensure all fields are filled correctly", err,
			"Usage: fuel add --date 2024-01-31 --odometer 12345 --fuel 40.5 --price 1.59")
		return
	}

	sys := deps.Services.Units.Current()
	currency := deps.Services.Config.Get().CurrencySymbol
	odo, _ := e.OdometerReading.Float()
	fuel, _ := e.Fuel.Float()
	price, _ := e.Price.Float()
	_, _ = fmt.Fprintf(deps.Stdout, "Added to %s: %s  %s %s  %s %s @ %s%s/%s\n",
		name, e.Date,
		cli.FormatNumber(odo, 2), sys.DistanceUnit(),
		cli.FormatNumber(fuel, 2), sys.VolumeUnit(),
		currency, cli.FormatNumber(price, 3), sys.VolumeUnit())
}

// logSort works out the order to show and saves it in the session.
func logSort(deps *cli.Deps, opts LogOptions) (*entry.SortConfig, bool) {
	if opts.Sort == "" && !opts.Desc {
		return nil, true
	}

	state, err := deps.Services.Session.Get()
	if err != nil {
		deps.Fail("Failed to load session state", err, "")
		return nil, false
	}
	cfg := state.Sort

	if opts.Sort != "" {
		key, err := entry.ParseSortKey(opts.Sort)
		if err != nil {
			deps.Fail(fmt.Sprintf("Invalid sort key '%s'", opts.Sort), nil, "Valid keys: "+sortKeyList())
			return nil, false
		}
		if opts.Toggle {
			cfg, err = deps.Services.Session.ToggleSort(key)
			if err != nil {
				deps.Fail("Failed to save sort order", err, "")
				return nil, false
			}
			return &cfg, true
		}
		cfg = entry.SortConfig{Key: key, Direction: entry.SortAscending}
	}
	if opts.Desc {
		cfg.Direction = entry.SortDescending
	}
	if err := deps.Services.Session.SetSort(cfg); err != nil {
		deps.Fail("Failed to save sort order", err, "")
		return nil, false
	}
	return &cfg, true
}

func sortKeyList() string {
	keys := make([]string, len(entry.SortKeys))
	for i, k := range entry.SortKeys {
		keys[i] = string(k)
	}
	return strings.Join(keys, ", ")
}

// ShowLog prints the processed log as a table.
func ShowLog(deps *cli.Deps, vehicle string, opts LogOptions) {
	name, ok := resolveVehicle(deps, vehicle)
	if !ok {
		return
	}
	cfg, ok := logSort(deps, opts)
	if !ok {
		return
	}

	result, err := deps.Services.Entry.Log(name, cfg)
	if err != nil {
		deps.Fail("Failed to read fuel log", err, "")
		return
	}
	printWarnings(deps, result.Warnings)

	if len(result.Entries) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No entries for %s\n", name)
		_, _ = fmt.Fprintln(deps.Stdout, "Hint: Add one with 'fuel add --date ... --odometer ... --fuel ... --price ...'")
		return
	}

	sys := deps.Services.Units.Current()
	currency := deps.Services.Config.Get().CurrencySymbol
	s := result.Sort
	header := func(label string, key entry.SortKey) string { return label + cli.SortIndicator(s, key) }

	_, _ = fmt.Fprintf(deps.Stdout, "Fuel log for %s:\n", name)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 90))
	indexWidth := len(strconv.Itoa(len(result.Entries)))
	_, _ = fmt.Fprintf(deps.Stdout, "%*s   %-12s %14s %14s %12s %12s %12s\n",
		indexWidth+2, "",
		header("Date", entry.SortByDate),
		header("Odometer ("+sys.DistanceUnit()+")", entry.SortByOdometer),
		header("Distance ("+sys.DistanceUnit()+")", entry.SortByDistance),
		header("Fuel ("+sys.VolumeUnit()+")", entry.SortByFuel),
		header("Price ("+currency+")", entry.SortByPrice),
		header("Total ("+currency+")", entry.SortByTotalSpend))
	for i, e := range result.Entries {
		_, _ = fmt.Fprintf(deps.Stdout, "[%*d] %s %-12s %14s %14s %12s %12s %12s\n",
			indexWidth, i+1,
			cli.FormatMarker(e),
			e.Date,
			cli.FormatOptional(e.OdometerReading, 2),
			cli.FormatOptional(e.DistanceTraveled, 2),
			cli.FormatOptional(e.Fuel, 2),
			cli.FormatOptional(e.Price, 3),
			cli.FormatOptional(e.TotalSpend, 2))
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 90))

	total := fmt.Sprintf("Total: %s", cli.Count(len(result.Entries), "entry"))
	if result.InvalidCount > 0 {
		total += fmt.Sprintf(" (%d invalid)", result.InvalidCount)
	}
	_, _ = fmt.Fprintln(deps.Stdout, total)
	if len(result.Notices) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout)
		printNotices(deps.Stdout, result.Notices)
	}
}

// DeleteEntry deletes the n-th entry of the displayed log with optional
// confirmation.
func DeleteEntry(deps *cli.Deps, vehicle, indexStr string, skipConfirm bool) {
	userIndex, err := strconv.Atoi(indexStr)
	if err != nil {
		deps.Fail(fmt.Sprintf("Invalid index '%s'. Index must be a number", indexStr), nil, "List entries with 'fuel log' to see available indices")
		return
	}
	if userIndex < 1 {
		deps.Fail(fmt.Sprintf("Index must be 1 or greater (got %d)", userIndex), nil, "")
		return
	}

	name, ok := resolveVehicle(deps, vehicle)
	if !ok {
		return
	}

	result, err := deps.Services.Entry.Log(name, nil)
	if err != nil {
		deps.Fail("Failed to read fuel log", err, "")
		return
	}
	if len(result.Entries) == 0 {
		deps.Fail("No entries found to delete", nil, "")
		return
	}
	if userIndex > len(result.Entries) {
		deps.Fail(fmt.Sprintf("Entry %d does not exist (valid range: 1-%d)", userIndex, len(result.Entries)), nil,
			"List entries with 'fuel log' to see all indices")
		return
	}

	target := result.Entries[userIndex-1]
	_, _ = fmt.Fprintln(deps.Stdout, "Entry to delete:")
	_, _ = fmt.Fprintf(deps.Stdout, "  %s  odometer %s  fuel %s  price %s\n",
		target.Date, target.Raw.OdometerReading, target.Raw.Fuel, target.Raw.Price)

	if !skipConfirm {
		if !promptConfirmation(deps.Stdout, deps.Stdin, "Delete this entry?") {
			_, _ = fmt.Fprintln(deps.Stdout, "Deletion cancelled")
			return
		}
	}

	deleted, err := deps.Services.Entry.Delete(name, userIndex, &result.Sort)
	if err != nil {
		deps.Fail("Failed to delete entry", err, "")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Deleted entry from %s: %s\n", name, deleted.Date)
}

// ClearEntries removes every entry of a vehicle with optional confirmation.
func ClearEntries(deps *cli.Deps, vehicle string, skipConfirm bool) {
	name, ok := resolveVehicle(deps, vehicle)
	if !ok {
		return
	}
	raws, err := deps.Services.Entry.Raw(name)
	if err != nil {
		deps.Fail("Failed to read fuel log", err, "")
		return
	}
	if len(raws) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No entries to clear for %s\n", name)
		return
	}

	if !skipConfirm {
		question := fmt.Sprintf("Delete all %s of %s?", cli.Count(len(raws), "entry"), name)
		if !promptConfirmation(deps.Stdout, deps.Stdin, question) {
			_, _ = fmt.Fprintln(deps.Stdout, "Clear cancelled")
			return
		}
	}

	n, err := deps.Services.Entry.Clear(name)
	if err != nil {
		deps.Fail("Failed to clear fuel log", err, "")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Cleared %s from %s\n", cli.Count(n, "entry"), name)
}

// EditEntries replaces the whole log with the JSON array in path.
func EditEntries(deps *cli.Deps, vehicle, path string) {
	name, ok := resolveVehicle(deps, vehicle)
	if !ok {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		deps.Fail("Failed to read file", err, "")
		return
	}
	var entries []entry.RawEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		deps.Fail("File must contain a JSON array of entries", err,
			`Each entry needs "date", "odometerReading", "fuel" and "price"`)
		return
	}

	if err := deps.Services.Entry.Replace(name, entries); err != nil {
		if errors.Is(err, service.ErrIncompleteEntries) {
			deps.Fail("Please ensure all fields are filled correctly", err, "No changes were made")
			return
		}
		deps.Fail("Failed to save fuel log", err, "")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Replaced log of %s with %s\n", name, cli.Count(len(entries), "entry"))
}
