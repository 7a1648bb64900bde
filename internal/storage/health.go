package storage

import "github.com/xolan/fuel/internal/entry"

// VehicleHealth summarizes one stored vehicle.
type VehicleHealth struct {
	Name           string
	Entries        int
	InvalidEntries int
	Migrated       bool
}

// StorageHealth contains information about the health status of a store.
type StorageHealth struct {
	Path           string
	Version        int
	Vehicles       []VehicleHealth
	TotalEntries   int
	InvalidEntries int
	Migrated       []string       // Vehicles still in the legacy layout on disk
	Warnings       []ParseWarning // Records that can't be decoded
}

// Healthy reports whether nothing needs attention.
func (h StorageHealth) Healthy() bool {
	return len(h.Warnings) == 0 && h.InvalidEntries == 0 && len(h.Migrated) == 0
}

// ValidateStorage loads the store and runs every vehicle's entries through
// the derivation pass. It never writes.
func ValidateStorage(s Store) (StorageHealth, error) {
	health := StorageHealth{Path: s.Path()}
	res, err := s.Load()
	if err != nil {
		return health, err
	}

	health.Version = res.Version
	health.Migrated = res.Migrated
	health.Warnings = res.Warnings

	migrated := map[string]bool{}
	for _, name := range res.Migrated {
		migrated[name] = true
	}
	for _, name := range res.Garage.Names() {
		v := res.Garage[name]
		processed := entry.Process(v.Entries)
		vh := VehicleHealth{
			Name:           name,
			Entries:        len(v.Entries),
			InvalidEntries: entry.CountInvalid(processed.Entries),
			Migrated:       migrated[name],
		}
		health.Vehicles = append(health.Vehicles, vh)
		health.TotalEntries += vh.Entries
		health.InvalidEntries += vh.InvalidEntries
	}
	return health, nil
}
