package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xolan/fuel/internal/entry"
)

// document is the on-disk layout of vehicles.json.
type document struct {
	Version  int                        `json:"version"`
	Vehicles map[string]json.RawMessage `json:"vehicles"`
}

// JSONStore keeps the whole garage in one JSON document.
type JSONStore struct {
	path       string
	unreadable unreadableSet
}

// NewJSONStore returns a store backed by the file at path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the document path.
func (s *JSONStore) Path() string { return s.path }

// Close is a no-op; the file is only open during Load and Save.
func (s *JSONStore) Close() error { return nil }

// Load reads the document. A missing or empty file is an empty garage.
// Documents without a version are the legacy layout: a top-level object
// mapping vehicle names to records or bare entry arrays.
func (s *JSONStore) Load() (LoadResult, error) {
	res := LoadResult{Garage: Garage{}, Version: SchemaVersion}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return res, nil
		}
		return res, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return res, nil
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return res, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}

	raw, version, err := splitDocument(top)
	if err != nil {
		return res, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	if version > SchemaVersion {
		return res, fmt.Errorf("%s was written by a newer version (schema %d, supported %d)", s.path, version, SchemaVersion)
	}
	res.Version = version
	decodeRecords(raw, &res)
	s.unreadable.remember(res.Unreadable)
	return res, nil
}

// splitDocument tells a versioned document from the legacy flat map.
func splitDocument(top map[string]json.RawMessage) (map[string]json.RawMessage, int, error) {
	versionRaw, hasVersion := top["version"]
	vehiclesRaw, hasVehicles := top["vehicles"]
	if !hasVersion || !hasVehicles {
		return top, 1, nil
	}

	var version int
	if err := json.Unmarshal(versionRaw, &version); err != nil {
		// A vehicle called "version" in a legacy document.
		return top, 1, nil
	}
	var vehicles map[string]json.RawMessage
	if err := json.Unmarshal(vehiclesRaw, &vehicles); err != nil {
		return nil, 0, fmt.Errorf("invalid vehicles object: %w", err)
	}
	if vehicles == nil {
		vehicles = map[string]json.RawMessage{}
	}
	return vehicles, version, nil
}

// Save writes the garage as the current document version. The previous
// file is rotated into the backups first and the new content is written
// to a temporary file that replaces the document in one rename.
func (s *JSONStore) Save(g Garage) error {
	doc := document{Version: SchemaVersion, Vehicles: s.unreadable.kept(g)}
	for name, v := range g {
		if v.Entries == nil {
			v.Entries = []entry.RawEntry{}
		}
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding vehicle %q: %w", name, err)
		}
		doc.Vehicles[name] = data
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode vehicles: %w", err)
	}

	if err := CreateBackup(s.path); err != nil {
		return fmt.Errorf("failed to back up %s: %w", s.path, err)
	}
	return writeAtomic(s.path, data)
}

// writeAtomic writes data next to path and renames it into place.
func writeAtomic(path string, data []byte) error {
	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}
	return os.Rename(tmpFile, path)
}
