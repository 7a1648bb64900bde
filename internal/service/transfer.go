package service

import (
	"fmt"
	"io"

	"github.com/xolan/fuel/internal/export"
	"github.com/xolan/fuel/internal/importer"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// TransferService imports and exports logs and statistics.
type TransferService struct {
	entries *EntryService
	stats   *StatsService
}

// NewTransferService creates a new TransferService
func NewTransferService(entries *EntryService, st *StatsService) *TransferService {
	return &TransferService{entries: entries, stats: st}
}

// Import replaces the vehicle's log with the contents of a .json or .csv
// file. A format error leaves the log untouched.
func (s *TransferService) Import(vehicle, filename string, data []byte) (importer.Result, error) {
	if _, err := s.entries.Raw(vehicle); err != nil {
		return importer.Result{}, err
	}
	res, err := importer.Parse(filename, data)
	if err != nil {
		return res, err
	}
	if res.Dropped > 0 {
		s.entries.repo.log.Warnf("dropped %d unparseable row(s) from %s", res.Dropped, filename)
	}
	if err := s.entries.replace(vehicle, res.Entries); err != nil {
		return res, err
	}
	s.entries.repo.log.Infof("imported %d entries into %q", len(res.Entries), vehicle)
	return res, nil
}

// ExportLog writes the vehicle's log in format.
func (s *TransferService) ExportLog(w io.Writer, vehicle, format string) error {
	raws, err := s.entries.Raw(vehicle)
	if err != nil {
		return err
	}
	switch format {
	case FormatJSON:
		return export.WriteLogJSON(w, raws)
	case FormatCSV:
		return export.WriteLogCSV(w, raws)
	}
	return fmt.Errorf("unsupported export format %q (use %s or %s)", format, FormatJSON, FormatCSV)
}

// ExportStats writes the vehicle's report in format. Nothing is written
// while the report is withheld.
func (s *TransferService) ExportStats(w io.Writer, vehicle, format string) error {
	res, err := s.stats.Compute(vehicle)
	if err != nil {
		return err
	}
	switch format {
	case FormatJSON:
		return export.WriteStatsJSON(w, res.Stats.Report)
	case FormatCSV:
		return export.WriteStatsCSV(w, res.Stats.Report)
	}
	return fmt.Errorf("unsupported export format %q (use %s or %s)", format, FormatJSON, FormatCSV)
}

// ExportSeries writes the chart series as CSV.
func (s *TransferService) ExportSeries(w io.Writer, vehicle string) error {
	res, err := s.stats.Compute(vehicle)
	if err != nil {
		return err
	}
	return export.WriteSeriesCSV(w, res.Series)
}
