// Package config reads CLI defaults from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvCatalog        = "TRMARKUP_CATALOG"
	EnvLocale         = "TRMARKUP_LOCALE"
	EnvFallbackLocale = "TRMARKUP_FALLBACK_LOCALE"
	EnvTheme          = "TRMARKUP_THEME"
	EnvOSC8           = "TRMARKUP_OSC8"
)

// Config holds CLI defaults. Flags override every field.
type Config struct {
	// Catalog is a message file, a directory of message files or an
	// http(s) URL.
	Catalog        string
	Locale         string
	FallbackLocale string
	Theme          string
	// OSC8 is auto, on or off.
	OSC8 string
}

// Load reads the .env files (default ".env") into the process environment
// without overriding variables already set, then builds the configuration.
// Missing .env files are ignored.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Catalog:        strings.TrimSpace(getenv(EnvCatalog)),
		Locale:         strings.TrimSpace(getenv(EnvLocale)),
		FallbackLocale: strings.TrimSpace(getenv(EnvFallbackLocale)),
		Theme:          strings.TrimSpace(getenv(EnvTheme)),
		OSC8:           strings.ToLower(strings.TrimSpace(getenv(EnvOSC8))),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.FallbackLocale == "" {
		c.FallbackLocale = "en"
	}
	if c.OSC8 == "" {
		c.OSC8 = "auto"
	}
	switch c.OSC8 {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("config: %s must be auto, on or off, got %q", EnvOSC8, c.OSC8)
	}
	return nil
}
