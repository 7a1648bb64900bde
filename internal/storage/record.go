package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// maxWarningContent caps the raw record text kept in a ParseWarning.
const maxWarningContent = 80

// decodeRecord turns one stored vehicle value into a Vehicle. A bare
// array of entries is the legacy layout and comes back with migrated set.
func decodeRecord(data []byte) (v Vehicle, migrated bool, err error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Vehicle{}, false, fmt.Errorf("empty record")
	}

	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &v.Entries); err != nil {
			return Vehicle{}, false, fmt.Errorf("invalid legacy entry list: %w", err)
		}
		return v, true, nil
	case '{':
		if err := json.Unmarshal(data, &v); err != nil {
			return Vehicle{}, false, fmt.Errorf("invalid vehicle record: %w", err)
		}
		return v, false, nil
	}
	return Vehicle{}, false, fmt.Errorf("vehicle record must be an object or an entry list")
}

// decodeRecords decodes every record of a raw map into res.
func decodeRecords(raw map[string]json.RawMessage, res *LoadResult) {
	for name, data := range raw {
		v, migrated, err := decodeRecord(data)
		if err != nil {
			res.Warnings = append(res.Warnings, ParseWarning{
				Vehicle: name,
				Content: truncate(string(data), maxWarningContent),
				Error:   err.Error(),
			})
			if res.Unreadable == nil {
				res.Unreadable = map[string]json.RawMessage{}
			}
			res.Unreadable[name] = data
			continue
		}
		if migrated {
			res.Migrated = append(res.Migrated, name)
		}
		res.Garage[name] = v
	}
	slices.Sort(res.Migrated)
	slices.SortFunc(res.Warnings, func(a, b ParseWarning) int {
		return strings.Compare(a.Vehicle, b.Vehicle)
	})
}

// unreadableSet remembers the records a store couldn't decode so a save
// doesn't drop them.
type unreadableSet struct {
	mu      sync.Mutex
	records map[string]json.RawMessage
}

func (u *unreadableSet) remember(records map[string]json.RawMessage) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.records = maps.Clone(records)
}

// kept returns the remembered records that g doesn't replace.
func (u *unreadableSet) kept(g Garage) map[string]json.RawMessage {
	u.mu.Lock()
	defer u.mu.Unlock()
	kept := map[string]json.RawMessage{}
	for name, data := range u.records {
		if _, ok := g[name]; !ok {
			kept[name] = data
		}
	}
	return kept
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
