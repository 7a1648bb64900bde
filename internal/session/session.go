// Package session keeps the UI state that outlives one command: the
// selected vehicle and the log sort order.
package session

import (
	"encoding/json"
	"os"

	"github.com/xolan/fuel/internal/entry"
	"github.com/xolan/fuel/internal/osutil"
)

// StateFile is the name of the JSON session state file
const StateFile = "state.json"

// State is the persisted session.
type State struct {
	Vehicle string           `json:"vehicle,omitempty"`
	Sort    entry.SortConfig `json:"sort"`
}

// Default returns an empty session with the default sort.
func Default() State {
	return State{Sort: entry.DefaultSort()}
}

// GetStatePath returns the path to the state file, creating the
// application directory if needed.
func GetStatePath() (string, error) {
	return osutil.AppFile(StateFile)
}

// Save writes state atomically (temp file, then rename).
func Save(path string, state State) error {
	// State holds only JSON-safe types, so Marshal cannot fail
	data, _ := json.MarshalIndent(state, "", "  ")

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpFile, path)
}

// Load reads the state file. A missing file is the default state. An
// unknown sort key or direction is replaced by the default.
func Load(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}

	state := Default()
	if err := json.Unmarshal(data, &state); err != nil {
		return Default(), err
	}
	state.Sort = state.Sort.Normalize()
	return state, nil
}

// Clear removes the state file. Clearing a missing file is not an error.
func Clear(path string) error {
	err := os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
