package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix starts every environment override. Nested keys use a double
// underscore: FUEL_MQTT__BROKER sets mqtt.broker.
const EnvPrefix = "FUEL_"

// ApplyEnv overlays FUEL_* environment variables onto cfg. Variables that
// don't match a config key are ignored.
func ApplyEnv(cfg *Config) error {
	k := koanf.New(".")
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	if len(k.Keys()) == 0 {
		return nil
	}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "toml"}); err != nil {
		return fmt.Errorf("invalid environment override: %w", err)
	}
	return nil
}
