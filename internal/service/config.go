package service

import (
	"fmt"
	"os"

	"github.com/xolan/fuel/internal/config"
)

// ConfigService owns config.toml. It keeps the settings as they are in
// the file apart from the effective settings, which add the FUEL_*
// environment overrides. Only the file settings are ever written.
type ConfigService struct {
	configPath string
	stored     config.Config
	config     config.Config
}

// NewConfigService wraps the file settings in stored. Overrides that
// don't validate are ignored here; NewServices rejects them up front.
func NewConfigService(configPath string, stored config.Config) *ConfigService {
	s := &ConfigService{configPath: configPath}
	s.set(stored)
	return s
}

func (s *ConfigService) set(stored config.Config) {
	s.stored = stored
	effective, err := config.WithEnv(stored)
	if err != nil {
		effective = stored
	}
	s.config = effective
}

// Get returns the effective settings: units, currency, theme, backend
// and MQTT as the rest of fuel sees them.
func (s *ConfigService) Get() config.Config {
	return s.config
}

// GetPath returns the location of config.toml.
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// Exists reports whether config.toml has been written.
func (s *ConfigService) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// Edit applies fn to the file settings, validates the result with the
// overrides on top and writes the file. Nothing changes on error.
func (s *ConfigService) Edit(fn func(*config.Config)) error {
	stored := s.stored
	fn(&stored)
	stored.Normalize()
	effective, err := config.WithEnv(stored)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := config.Save(s.configPath, stored); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	s.stored = stored
	s.config = effective
	return nil
}

// Init writes the commented sample config.toml.
func (s *ConfigService) Init() error {
	if s.Exists() {
		return fmt.Errorf("config file already exists at %s", s.configPath)
	}
	sample := config.GenerateSampleConfig()
	if err := os.WriteFile(s.configPath, []byte(sample), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Reload reads config.toml again, e.g. after the user edited it.
func (s *ConfigService) Reload() error {
	stored, err := config.LoadFileOrDefault(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if _, err := config.WithEnv(stored); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s.set(stored)
	return nil
}
