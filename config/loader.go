package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "LFP_"

// Load reads the default algorithm parameter and log level with priority
// defaults < environment variables, the lowest two rungs of the layering
// scheme cmd/lfp completes by applying explicit CLI flags on top of
// whatever Load returns.
func Load() (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"parameter": 0,
		"log_level": "info",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("config: failed to load defaults: %w", err)
	}

	err := k.Load(env.ProviderWithValue(envPrefix, ".", func(envKey, value string) (string, any) {
		key := strings.ToLower(strings.TrimPrefix(envKey, envPrefix))
		if key == "parameter" {
			if n, convErr := strconv.Atoi(value); convErr == nil {
				return key, n
			}
			return key, value
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config: failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
