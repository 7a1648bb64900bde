package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/fuel/internal/cli"
	"github.com/xolan/fuel/internal/config"
)

// Keys accepted by SetConfig. The unit system is changed with 'fuel units
// set' so stored entries get converted.
var settableKeys = []string{"currency_symbol", "theme", "storage_backend", "log_level"}

// ShowConfig displays the current configuration
func ShowConfig(deps *cli.Deps) {
	cfg := deps.Services.Config.Get()
	path := deps.Services.Config.GetPath()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", path)
	if deps.Services.Config.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no config file)")
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Storage:     %s\n", deps.Services.Storage.Path())
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "unit_system:     %s\n", cfg.UnitSystem)
	_, _ = fmt.Fprintf(deps.Stdout, "currency_symbol: %s\n", cfg.CurrencySymbol)
	_, _ = fmt.Fprintf(deps.Stdout, "theme:           %s\n", cfg.Theme)
	_, _ = fmt.Fprintf(deps.Stdout, "storage_backend: %s\n", cfg.StorageBackend)
	_, _ = fmt.Fprintf(deps.Stdout, "log_level:       %s\n", cfg.LogLevel)
	if cfg.MQTT.Enabled {
		_, _ = fmt.Fprintf(deps.Stdout, "mqtt:            %s (prefix %s)\n", cfg.MQTT.Broker, cfg.MQTT.TopicPrefix)
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "mqtt:            disabled")
	}
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	err := deps.Services.Config.Init()
	if err != nil {
		deps.Fail("Failed to create config file", err, "")
		return
	}

	path := deps.Services.Config.GetPath()
	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}

// SetConfig changes one setting and saves the config file.
func SetConfig(deps *cli.Deps, key, value string) {
	var apply func(*config.Config)
	switch key {
	case "currency_symbol":
		apply = func(cfg *config.Config) { cfg.CurrencySymbol = value }
	case "theme":
		apply = func(cfg *config.Config) { cfg.Theme = value }
	case "storage_backend":
		apply = func(cfg *config.Config) { cfg.StorageBackend = value }
	case "log_level":
		apply = func(cfg *config.Config) { cfg.LogLevel = value }
	case "unit_system":
		deps.Fail("The unit system converts stored entries", nil, "Use 'fuel units set <metric|imperial>'")
		return
	default:
		deps.Fail(fmt.Sprintf("Unknown setting '%s'", key), nil, "Settable keys: "+strings.Join(settableKeys, ", "))
		return
	}

	if err := deps.Services.Config.Edit(apply); err != nil {
		deps.Fail("Failed to update config", err, "")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Set %s = %s\n", key, value)
	if key == "storage_backend" && value != config.DefaultConfig().StorageBackend {
		_, _ = fmt.Fprintln(deps.Stdout, "Note: existing data is not copied to the new backend")
	}
}
