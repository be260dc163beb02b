// Package config layers the CLI's two environment-overridable settings —
// the default algorithm parameter and the log level — defaults under
// environment variables under explicit values, using koanf.
package config

import "strings"

// Config holds the environment-overridable defaults consulted by cmd/lfp
// before CLI flags are applied.
type Config struct {
	Parameter int    `koanf:"parameter"`
	LogLevel  string `koanf:"log_level"`
}

// Validate normalizes and checks the loaded configuration.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	case "":
		c.LogLevel = "info"
	default:
		c.LogLevel = "info"
	}
	if c.Parameter < 0 {
		c.Parameter = 0
	}
	return nil
}
