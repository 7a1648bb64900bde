package service

import (
	"fmt"

	"github.com/xolan/fuel/internal/entry"
	"github.com/xolan/fuel/internal/session"
)

// SessionService reads and updates the persisted session state.
type SessionService struct {
	statePath string
}

// NewSessionService creates a new SessionService
func NewSessionService(statePath string) *SessionService {
	return &SessionService{statePath: statePath}
}

// Get returns the current session state.
func (s *SessionService) Get() (session.State, error) {
	state, err := session.Load(s.statePath)
	if err != nil {
		return state, fmt.Errorf("failed to load session state: %w", err)
	}
	return state, nil
}

func (s *SessionService) update(fn func(*session.State)) error {
	state, err := s.Get()
	if err != nil {
		return err
	}
	fn(&state)
	if err := session.Save(s.statePath, state); err != nil {
		return fmt.Errorf("failed to save session state: %w", err)
	}
	return nil
}

// SetVehicle selects a vehicle; the empty name clears the selection.
func (s *SessionService) SetVehicle(name string) error {
	return s.update(func(st *session.State) { st.Vehicle = name })
}

// SetSort stores the log sort order.
func (s *SessionService) SetSort(cfg entry.SortConfig) error {
	return s.update(func(st *session.State) { st.Sort = cfg.Normalize() })
}

// ToggleSort selects key the way clicking a column header does and
// returns the resulting order.
func (s *SessionService) ToggleSort(key entry.SortKey) (entry.SortConfig, error) {
	var cfg entry.SortConfig
	err := s.update(func(st *session.State) {
		st.Sort = st.Sort.Toggle(key)
		cfg = st.Sort
	})
	return cfg, err
}
