// Package importer reads fuel logs exported by this tool or typed up by
// hand. An import always yields the complete replacement entry list for
// one vehicle; it never merges.
package importer

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xolan/fuel/internal/entry"
)

// Format is a supported import file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file, use .json or .csv")
	ErrInvalidJSON       = errors.New("invalid JSON format, expected an array of entry objects")
	ErrTooFewLines       = errors.New("CSV file needs a header and at least one data row")
	ErrMissingHeaders    = errors.New("CSV must contain headers: 'date', 'odometerreading', 'fuel', and 'price' (or 'priceperunit')")
)

// requiredKeys must be present on every object of a JSON import.
var requiredKeys = []string{"date", "odometerReading", "fuel", "price"}

// Result is a parsed import.
type Result struct {
	Entries []entry.RawEntry
	// Dropped counts CSV rows skipped because a field didn't parse.
	Dropped int
}

// DetectFormat picks the format from the file extension.
func DetectFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(filename))
}

// Parse reads data in the format implied by filename.
func Parse(filename string, data []byte) (Result, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return Result{}, err
	}
	if format == FormatJSON {
		return ParseJSON(data)
	}
	return ParseCSV(bytes.NewReader(data))
}

// ParseJSON accepts an array of objects that each carry all four entry
// keys. Values are kept as written, so a malformed value is imported and
// later flagged as invalid rather than rejected here.
func ParseJSON(data []byte) (Result, error) {
	var objects []map[string]json.RawMessage
	if err := json.Unmarshal(data, &objects); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if objects == nil {
		return Result{}, ErrInvalidJSON
	}

	entries := make([]entry.RawEntry, 0, len(objects))
	for i, obj := range objects {
		for _, key := range requiredKeys {
			if _, ok := obj[key]; !ok {
				return Result{}, fmt.Errorf("%w: entry %d is missing %q", ErrInvalidJSON, i+1, key)
			}
		}
		var e entry.RawEntry
		raw, _ := json.Marshal(obj)
		if err := json.Unmarshal(raw, &e); err != nil {
			return Result{}, fmt.Errorf("%w: entry %d: %v", ErrInvalidJSON, i+1, err)
		}
		entries = append(entries, e)
	}
	return Result{Entries: entries}, nil
}

// csvColumns holds the column index of every entry field.
type csvColumns struct {
	date, odometer, fuel, price int
}

func locateColumns(header []string) (csvColumns, error) {
	index := map[string]int{}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.ReplaceAll(h, `"`, "")))
		if _, seen := index[h]; !seen {
			index[h] = i
		}
	}
	find := func(names ...string) int {
		for _, n := range names {
			if i, ok := index[n]; ok {
				return i
			}
		}
		return -1
	}
	cols := csvColumns{
		date:     find("date"),
		odometer: find("odometerreading"),
		fuel:     find("fuel"),
		price:    find("price", "priceperunit"),
	}
	if cols.date < 0 || cols.odometer < 0 || cols.fuel < 0 || cols.price < 0 {
		return cols, ErrMissingHeaders
	}
	return cols, nil
}

// ParseCSV reads a header row naming the date, odometerreading, fuel and
// price (or priceperunit) columns in any order and case. Blank lines are
// ignored. Rows without a date or with a non-numeric odometer, fuel or
// price are dropped.
func ParseCSV(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read CSV: %w", err)
	}
	records = dropBlank(records)
	if len(records) < 2 {
		return Result{}, ErrTooFewLines
	}

	cols, err := locateColumns(records[0])
	if err != nil {
		return Result{}, err
	}

	res := Result{Entries: []entry.RawEntry{}}
	for _, rec := range records[1:] {
		e, ok := parseRow(rec, cols)
		if !ok {
			res.Dropped++
			continue
		}
		res.Entries = append(res.Entries, e)
	}
	return res, nil
}

func parseRow(rec []string, cols csvColumns) (entry.RawEntry, bool) {
	field := func(i int) string {
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	date := field(cols.date)
	if date == "" {
		return entry.RawEntry{}, false
	}
	var nums [3]float64
	for i, col := range []int{cols.odometer, cols.fuel, cols.price} {
		f, ok := entry.Value(field(col)).Float()
		if !ok {
			return entry.RawEntry{}, false
		}
		nums[i] = f
	}
	return entry.RawEntry{
		Date:            date,
		OdometerReading: entry.Number(nums[0]),
		Fuel:            entry.Number(nums[1]),
		Price:           entry.Number(nums[2]),
	}, true
}

func dropBlank(records [][]string) [][]string {
	out := records[:0]
	for _, rec := range records {
		blank := true
		for _, f := range rec {
			if strings.TrimSpace(f) != "" {
				blank = false
				break
			}
		}
		if !blank {
			out = append(out, rec)
		}
	}
	return out
}
