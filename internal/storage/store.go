// Package storage persists vehicles and their raw fuel entries.
//
// Two backends share one record format: a single versioned JSON document
// (the default) and a SQLite key-value table keyed by vehicle name.
// Older layouts are migrated once, when they are loaded.
package storage

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/xolan/fuel/internal/entry"
	"github.com/xolan/fuel/internal/osutil"
)

const (
	// VehiclesFile is the JSON document holding every vehicle
	VehiclesFile = "vehicles.json"
	// DatabaseFile is the SQLite database used by the sqlite backend
	DatabaseFile = "fuel.db"
	// SchemaVersion is the current document version
	SchemaVersion = 2
)

// Backend names.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Vehicle is the stored record for one vehicle.
type Vehicle struct {
	Price             *float64         `json:"price"`
	Entries           []entry.RawEntry `json:"entries"`
	HasInvalidEntries bool             `json:"hasInvalidEntries"`
}

// Garage maps vehicle names to their records.
type Garage map[string]Vehicle

// Names returns the vehicle names in sorted order.
func (g Garage) Names() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ParseWarning describes a stored vehicle record that couldn't be decoded.
// The record is skipped; the rest of the garage still loads.
type ParseWarning struct {
	Vehicle string // Key of the broken record
	Content string // Raw record, truncated
	Error   string // Description of the decoding error
}

// LoadResult is what a store read back.
type LoadResult struct {
	Garage   Garage
	Version  int            // Version the data was stored with (1 for legacy layouts)
	Migrated []string       // Vehicles converted from the legacy bare-array layout
	Warnings []ParseWarning // Records that were skipped

	// Unreadable holds the raw value of every skipped record, by name.
	Unreadable map[string]json.RawMessage
}

// Store reads and writes the whole garage. Writes replace everything
// except the unreadable records of the last Load, which are written back
// as they were unless the garage now holds a vehicle of the same name.
type Store interface {
	Load() (LoadResult, error)
	Save(g Garage) error
	// Path is the file backing the store; backups are taken of it.
	Path() string
	Close() error
}

// GetStoragePath returns the default file for backend, creating the
// application directory if needed.
func GetStoragePath(backend string) (string, error) {
	switch backend {
	case BackendJSON, "":
		return osutil.AppFile(VehiclesFile)
	case BackendSQLite:
		return osutil.AppFile(DatabaseFile)
	}
	return "", fmt.Errorf("unknown storage backend %q", backend)
}

// Open returns the store for backend at path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendJSON, "":
		return NewJSONStore(path), nil
	case BackendSQLite:
		return NewSQLiteStore(path), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", backend)
}
