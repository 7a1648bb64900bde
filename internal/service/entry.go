package service

import (
	"errors"
	"fmt"

	"github.com/xolan/fuel/internal/entry"
	"github.com/xolan/fuel/internal/stats"
)

// Common errors for the entry service
var (
	ErrInvalidIndex      = errors.New("invalid entry index")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrNoEntries         = errors.New("no entries found")
	ErrIncompleteEntries = errors.New("please ensure all fields are filled correctly")
)

// EntryService provides operations on a vehicle's fuel log
type EntryService struct {
	repo    *repository
	session *SessionService
}

// NewEntryService creates a new EntryService
func NewEntryService(repo *repository, sess *SessionService) *EntryService {
	return &EntryService{repo: repo, session: sess}
}

// Add validates a manually entered fill-up and appends it to the log.
// Nothing is stored when any field is rejected.
func (s *EntryService) Add(vehicle string, in entry.Input) (entry.RawEntry, error) {
	e, err := entry.ParseInput(in)
	if err != nil {
		return entry.RawEntry{}, err
	}

	g, v, err := s.repo.vehicle(vehicle)
	if err != nil {
		return entry.RawEntry{}, err
	}
	v.Entries = append(v.Entries, e)
	g[vehicle] = v
	if err := s.repo.save(g); err != nil {
		return entry.RawEntry{}, err
	}
	s.repo.log.Debugw("added entry", map[string]any{"vehicle": vehicle, "date": e.Date})
	return e, nil
}

// Raw returns the entries exactly as stored.
func (s *EntryService) Raw(vehicle string) ([]entry.RawEntry, error) {
	_, v, err := s.repo.vehicle(vehicle)
	if err != nil {
		return nil, err
	}
	return v.Entries, nil
}

// Log returns the processed log in display order. A nil sort uses the
// order saved in the session.
func (s *EntryService) Log(vehicle string, sortCfg *entry.SortConfig) (*LogResult, error) {
	res, err := s.repo.load()
	if err != nil {
		return nil, err
	}
	v, ok := res.Garage[vehicle]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVehicleNotFound, vehicle)
	}

	cfg, err := s.sortConfig(sortCfg)
	if err != nil {
		return nil, err
	}

	processed := entry.Process(v.Entries)
	out := &LogResult{
		Vehicle:           vehicle,
		Entries:           entry.Sort(processed.Entries, cfg),
		Sort:              cfg,
		InvalidCount:      entry.CountInvalid(processed.Entries),
		HasInvalidEntries: processed.HasInvalidEntries,
		Warnings:          res.Warnings,
	}
	if out.HasInvalidEntries {
		out.Notices = append(out.Notices, stats.DataErrorNotice)
	}
	if n := stats.LogNotice(len(processed.Entries)); n != "" {
		out.Notices = append(out.Notices, n)
	}
	return out, nil
}

func (s *EntryService) sortConfig(cfg *entry.SortConfig) (entry.SortConfig, error) {
	if cfg != nil {
		return cfg.Normalize(), nil
	}
	state, err := s.session.Get()
	if err != nil {
		return entry.DefaultSort(), err
	}
	return state.Sort, nil
}

// Delete removes the entry shown at 1-based position index of the log
// sorted by cfg. Entries have no identity, so the first stored entry equal
// to the displayed one is removed.
func (s *EntryService) Delete(vehicle string, index int, cfg *entry.SortConfig) (entry.RawEntry, error) {
	if index < 1 {
		return entry.RawEntry{}, ErrInvalidIndex
	}
	log, err := s.Log(vehicle, cfg)
	if err != nil {
		return entry.RawEntry{}, err
	}
	if len(log.Entries) == 0 {
		return entry.RawEntry{}, ErrNoEntries
	}
	if index > len(log.Entries) {
		return entry.RawEntry{}, fmt.Errorf("%w: entry %d does not exist (valid range: 1-%d)", ErrIndexOutOfRange, index, len(log.Entries))
	}
	target := log.Entries[index-1].Raw

	g, v, err := s.repo.vehicle(vehicle)
	if err != nil {
		return entry.RawEntry{}, err
	}
	for i, e := range v.Entries {
		if e.Equal(target) {
			v.Entries = append(v.Entries[:i:i], v.Entries[i+1:]...)
			g[vehicle] = v
			if err := s.repo.save(g); err != nil {
				return entry.RawEntry{}, err
			}
			s.repo.log.Debugw("deleted entry", map[string]any{"vehicle": vehicle, "date": e.Date})
			return e, nil
		}
	}
	return entry.RawEntry{}, ErrNoEntries
}

// Clear removes every entry of a vehicle and returns how many there were.
func (s *EntryService) Clear(vehicle string) (int, error) {
	g, v, err := s.repo.vehicle(vehicle)
	if err != nil {
		return 0, err
	}
	n := len(v.Entries)
	v.Entries = []entry.RawEntry{}
	g[vehicle] = v
	if err := s.repo.save(g); err != nil {
		return 0, err
	}
	s.repo.log.Debugf("cleared %d entries of %q", n, vehicle)
	return n, nil
}

// Replace swaps the whole log for entries, as a bulk edit does. Every
// entry must have a readable date and numeric fields; otherwise nothing
// changes.
func (s *EntryService) Replace(vehicle string, entries []entry.RawEntry) error {
	for i, e := range entries {
		if err := entry.Validate(e); err != nil {
			return fmt.Errorf("%w: entry %d: %v", ErrIncompleteEntries, i+1, err)
		}
	}
	return s.replace(vehicle, entries)
}

// replace stores entries as they are.
func (s *EntryService) replace(vehicle string, entries []entry.RawEntry) error {
	g, v, err := s.repo.vehicle(vehicle)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []entry.RawEntry{}
	}
	v.Entries = entries
	g[vehicle] = v
	if err := s.repo.save(g); err != nil {
		return err
	}
	s.repo.log.Debugf("replaced log of %q with %d entries", vehicle, len(entries))
	return nil
}
