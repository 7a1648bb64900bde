package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xolan/fuel/internal/entry"
	"github.com/xolan/fuel/internal/storage"
)

// Common errors for the vehicle service
var (
	ErrEmptyName          = errors.New("vehicle name cannot be empty")
	ErrVehicleExists      = errors.New("a vehicle with this name already exists")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrNoVehicleSelected  = errors.New("no vehicle selected")
	ErrInvalidPrice       = errors.New("purchase price must be a positive number")
	ErrNoChangesSpecified = errors.New("at least one change must be specified")
)

// VehicleService manages the vehicles in the garage and the current
// selection.
type VehicleService struct {
	repo    *repository
	session *SessionService
}

// NewVehicleService creates a new VehicleService
func NewVehicleService(repo *repository, sess *SessionService) *VehicleService {
	return &VehicleService{repo: repo, session: sess}
}

func validatePrice(price *float64) error {
	if price != nil && *price <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

// Add creates an empty vehicle. The first vehicle added becomes the
// current one.
func (s *VehicleService) Add(name string, price *float64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if err := validatePrice(price); err != nil {
		return err
	}

	g, err := s.repo.garage()
	if err != nil {
		return err
	}
	if _, ok := g[name]; ok {
		return fmt.Errorf("%w: %s", ErrVehicleExists, name)
	}
	g[name] = storage.Vehicle{Price: price, Entries: []entry.RawEntry{}}
	if err := s.repo.save(g); err != nil {
		return err
	}
	s.repo.log.Debugf("added vehicle %q", name)

	state, err := s.session.Get()
	if err != nil {
		return err
	}
	if state.Vehicle == "" {
		return s.session.SetVehicle(name)
	}
	return nil
}

// Edit renames a vehicle and/or changes its purchase price. A rename of
// the current vehicle moves the selection with it.
func (s *VehicleService) Edit(name string, upd VehicleUpdate) (string, error) {
	if upd.Name == nil && upd.Price == nil && !upd.ClearPrice {
		return name, ErrNoChangesSpecified
	}
	if err := validatePrice(upd.Price); err != nil {
		return name, err
	}

	g, v, err := s.repo.vehicle(name)
	if err != nil {
		return name, err
	}

	newName := name
	if upd.Name != nil {
		newName = strings.TrimSpace(*upd.Name)
		if newName == "" {
			return name, ErrEmptyName
		}
		if _, ok := g[newName]; ok && newName != name {
			return name, fmt.Errorf("%w: %s", ErrVehicleExists, newName)
		}
	}
	switch {
	case upd.ClearPrice:
		v.Price = nil
	case upd.Price != nil:
		v.Price = upd.Price
	}

	delete(g, name)
	g[newName] = v
	if err := s.repo.save(g); err != nil {
		return name, err
	}

	if newName != name {
		state, err := s.session.Get()
		if err != nil {
			return newName, err
		}
		if state.Vehicle == name {
			if err := s.session.SetVehicle(newName); err != nil {
				return newName, err
			}
		}
		s.repo.log.Debugf("renamed vehicle %q to %q", name, newName)
	}
	return newName, nil
}

// Delete removes a vehicle and its log. Deleting the current vehicle
// clears the selection.
func (s *VehicleService) Delete(name string) error {
	g, _, err := s.repo.vehicle(name)
	if err != nil {
		return err
	}
	delete(g, name)
	if err := s.repo.save(g); err != nil {
		return err
	}
	s.repo.log.Debugf("deleted vehicle %q", name)

	state, err := s.session.Get()
	if err != nil {
		return err
	}
	if state.Vehicle == name {
		return s.session.SetVehicle("")
	}
	return nil
}

// List returns all vehicles sorted by name.
func (s *VehicleService) List() ([]VehicleSummary, error) {
	g, err := s.repo.garage()
	if err != nil {
		return nil, err
	}
	state, err := s.session.Get()
	if err != nil {
		return nil, err
	}

	out := make([]VehicleSummary, 0, len(g))
	for _, name := range g.Names() {
		v := g[name]
		processed := entry.Process(v.Entries)
		sum := VehicleSummary{
			Name:           name,
			Price:          v.Price,
			Entries:        len(v.Entries),
			InvalidEntries: entry.CountInvalid(processed.Entries),
			Current:        name == state.Vehicle,
		}
		for _, e := range processed.Entries {
			if e.Time.After(sum.LastFillUp) {
				sum.LastFillUp = e.Time
			}
		}
		out = append(out, sum)
	}
	return out, nil
}

// Use makes name the current vehicle.
func (s *VehicleService) Use(name string) error {
	if _, _, err := s.repo.vehicle(name); err != nil {
		return err
	}
	return s.session.SetVehicle(name)
}

// Get returns one vehicle's record.
func (s *VehicleService) Get(name string) (storage.Vehicle, error) {
	_, v, err := s.repo.vehicle(name)
	return v, err
}

// Resolve returns name if set, otherwise the current vehicle. A selection
// pointing at a vehicle that no longer exists is an error.
func (s *VehicleService) Resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		state, err := s.session.Get()
		if err != nil {
			return "", err
		}
		name = state.Vehicle
	}
	if name == "" {
		return "", ErrNoVehicleSelected
	}
	if _, _, err := s.repo.vehicle(name); err != nil {
		return "", err
	}
	return name, nil
}

// Current returns the selected vehicle name, or "" when nothing is
// selected or the selection is stale.
func (s *VehicleService) Current() string {
	name, err := s.Resolve("")
	if err != nil {
		return ""
	}
	return name
}
