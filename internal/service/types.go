// Package service provides the business logic layer for the fuel
// application. It wraps storage, session state, config, and the engine
// packages, providing one API for both CLI and TUI frontends.
package service

import (
	"time"

	"github.com/xolan/fuel/internal/entry"
	"github.com/xolan/fuel/internal/stats"
	"github.com/xolan/fuel/internal/storage"
)

// VehicleSummary is one row of the vehicle list.
type VehicleSummary struct {
	Name           string
	Price          *float64
	Entries        int
	InvalidEntries int
	LastFillUp     time.Time // Zero when the log is empty or has no readable dates
	Current        bool
}

// VehicleUpdate describes an edit. Nil fields are left unchanged.
type VehicleUpdate struct {
	Name       *string
	Price      *float64
	ClearPrice bool
}

// LogResult is a vehicle's log ready for display.
type LogResult struct {
	Vehicle string
	// Entries are in display order (Sort applied).
	Entries           []entry.Processed
	Sort              entry.SortConfig
	InvalidCount      int
	HasInvalidEntries bool
	Warnings          []storage.ParseWarning
	Notices           []string
}

// StatsResult holds everything derived from one vehicle's log.
type StatsResult struct {
	Vehicle   string
	Processed entry.Result
	Usable    []entry.Processed
	Stats     stats.Result
	Ownership stats.Ownership
	Series    []stats.Series
	Currency  string
}

// Notices returns the messages to show in place of withheld sections.
func (r *StatsResult) Notices() []string {
	var notices []string
	if !r.Stats.Available() {
		notices = append(notices, stats.NeedMore(r.Stats.Needed, stats.SectionStats))
	}
	if r.Series == nil {
		notices = append(notices, stats.NeedMore(r.Stats.Needed, stats.SectionSeries))
	}
	if !r.Ownership.Available() {
		notices = append(notices, stats.OwnershipNotice(r.Ownership))
	}
	return notices
}

// UnitsChange reports what a unit system switch converted.
type UnitsChange struct {
	From     string
	To       string
	Vehicles int
	Entries  int
}
