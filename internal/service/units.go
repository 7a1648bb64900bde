package service

import (
	"fmt"

	"github.com/xolan/fuel/internal/config"
	"github.com/xolan/fuel/internal/units"
)

// UnitsService switches the unit system.
type UnitsService struct {
	repo   *repository
	config *ConfigService
}

// NewUnitsService creates a new UnitsService
func NewUnitsService(repo *repository, cfg *ConfigService) *UnitsService {
	return &UnitsService{repo: repo, config: cfg}
}

// Current returns the configured unit system.
func (s *UnitsService) Current() units.System {
	return s.config.Get().Units()
}

// Set converts every vehicle's stored entries to the target system and
// saves the preference. The preference is global, so all vehicles are
// converted together. Selecting the current system changes nothing.
// The preference is written first and put back if the entries can't be
// saved, so stored entries and unit_system never disagree.
func (s *UnitsService) Set(to units.System) (UnitsChange, error) {
	from := s.Current()
	change := UnitsChange{From: string(from), To: string(to)}
	if !to.Valid() {
		return change, fmt.Errorf("invalid unit system %q", to)
	}
	if from == to {
		return change, nil
	}

	g, err := s.repo.garage()
	if err != nil {
		return change, err
	}
	for name, v := range g {
		if len(v.Entries) == 0 {
			continue
		}
		v.Entries = units.Convert(v.Entries, from, to)
		g[name] = v
		change.Vehicles++
		change.Entries += len(v.Entries)
	}

	if err := s.setPreference(to); err != nil {
		return change, err
	}
	if s.Current() != to {
		_ = s.setPreference(from)
		return change, fmt.Errorf("unit_system is overridden by %sUNIT_SYSTEM", config.EnvPrefix)
	}
	if err := s.repo.save(g); err != nil {
		if rbErr := s.setPreference(from); rbErr != nil {
			s.repo.log.Errorf("restoring unit_system %s: %v", from, rbErr)
		}
		return change, err
	}
	s.repo.log.Infof("converted %d entries from %s to %s", change.Entries, from, to)
	return change, nil
}

func (s *UnitsService) setPreference(system units.System) error {
	return s.config.Edit(func(cfg *config.Config) { cfg.UnitSystem = string(system) })
}
