package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/xolan/fuel/internal/osutil"
	"github.com/xolan/fuel/internal/units"
)

// ConfigFile is the name of the TOML configuration file
const ConfigFile = "config.toml"

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// DefaultTheme matches the TUI default.
const DefaultTheme = "dracula"

// Config represents the application configuration
type Config struct {
	// UnitSystem is how stored readings are interpreted: metric or imperial
	UnitSystem string `toml:"unit_system"`
	// CurrencySymbol prefixes money values in reports
	CurrencySymbol string `toml:"currency_symbol"`
	// Theme is the bubbletint theme used by the TUI
	Theme string `toml:"theme"`
	// StorageBackend selects json (single document) or sqlite
	StorageBackend string `toml:"storage_backend"`
	// LogLevel is a zerolog level name
	LogLevel string `toml:"log_level"`

	MQTT MQTTConfig `toml:"mqtt"`
}

// MQTTConfig configures `fuel publish`.
type MQTTConfig struct {
	Enabled     bool   `toml:"enabled"`
	Broker      string `toml:"broker"`
	Username    string `toml:"username"`
	Password    string `toml:"password"`
	TopicPrefix string `toml:"topic_prefix"`
	ClientID    string `toml:"client_id"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		UnitSystem:     string(units.Default),
		CurrencySymbol: "$",
		Theme:          DefaultTheme,
		StorageBackend: BackendJSON,
		LogLevel:       "warn",
		MQTT: MQTTConfig{
			TopicPrefix: "fuel",
			ClientID:    "fuel",
		},
	}
}

// Units returns the configured unit system.
func (c Config) Units() units.System {
	if s, err := units.Parse(c.UnitSystem); err == nil {
		return s
	}
	return units.Default
}

// Normalize lowercases enumerated values and fills blanks with defaults.
func (c *Config) Normalize() {
	def := DefaultConfig()
	c.UnitSystem = strings.ToLower(strings.TrimSpace(c.UnitSystem))
	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Theme = strings.TrimSpace(c.Theme)

	if c.UnitSystem == "" {
		c.UnitSystem = def.UnitSystem
	}
	if c.CurrencySymbol == "" {
		c.CurrencySymbol = def.CurrencySymbol
	}
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.StorageBackend == "" {
		c.StorageBackend = def.StorageBackend
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.MQTT.TopicPrefix == "" {
		c.MQTT.TopicPrefix = def.MQTT.TopicPrefix
	}
	c.MQTT.TopicPrefix = strings.Trim(c.MQTT.TopicPrefix, "/")
	if c.MQTT.ClientID == "" {
		c.MQTT.ClientID = def.MQTT.ClientID
	}
}

var validLogLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

// Validate returns an error describing the first invalid setting.
func (c Config) Validate() error {
	if _, err := units.Parse(c.UnitSystem); err != nil {
		return fmt.Errorf("invalid unit_system: %w", err)
	}
	switch c.StorageBackend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("invalid storage_backend %q (use %s or %s)", c.StorageBackend, BackendJSON, BackendSQLite)
	}
	valid := false
	for _, l := range validLogLevels {
		if c.LogLevel == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid log_level %q (use one of %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}
	if c.MQTT.Enabled && c.MQTT.Broker == "" {
		return errors.New("mqtt.broker is required when mqtt is enabled")
	}
	return nil
}

// GetConfigPath returns the path to the config file, creating the
// application directory if it doesn't exist.
func GetConfigPath() (string, error) {
	return osutil.AppFile(ConfigFile)
}

// Load reads the config file at path on top of the defaults, applies
// FUEL_* environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	return WithEnv(cfg)
}

// LoadOrDefault behaves like Load but returns the defaults (with
// environment overrides) when the file doesn't exist.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := LoadFileOrDefault(path)
	if err != nil {
		return Config{}, err
	}
	return WithEnv(cfg)
}

// LoadFile reads only the config file at path on top of the defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// LoadFileOrDefault behaves like LoadFile but returns the defaults when
// the file doesn't exist.
func LoadFileOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return LoadFile(path)
}

// WithEnv returns a copy of cfg with the FUEL_* overrides applied,
// normalized and validated. cfg itself is left as it was.
func WithEnv(cfg Config) (Config, error) {
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg to path atomically.
func Save(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, buf.Bytes(), 0644); err != nil {
		return err
	}
	return os.Rename(tmpFile, path)
}

// GenerateSampleConfig returns a commented config file with every option.
func GenerateSampleConfig() string {
	return `# fuel configuration

# How odometer, fuel and price values are interpreted: "metric" (km, L)
# or "imperial" (miles, gallons). Change it with "fuel units set" so
# stored entries are converted too.
unit_system = "metric"

# Prefix for money values in reports.
currency_symbol = "$"

# TUI theme (any bubbletint theme id).
theme = "dracula"

# "json" keeps everything in vehicles.json, "sqlite" uses fuel.db.
storage_backend = "json"

# trace, debug, info, warn, error or disabled.
log_level = "warn"

[mqtt]
enabled = false
broker = "localhost:1883"
username = ""
password = ""
topic_prefix = "fuel"
client_id = "fuel"
`
}
