// Package config reads the TOML configuration of the npatch tool.
package config

import (
	"bytes"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/srlehn/ninepatch/internal/errors"
	"github.com/srlehn/ninepatch/patch"
)

// Config is the file format:
//
//	assets    = "assets/"
//	density   = 2.0
//	resizer   = "bilinear"
//	log_level = "info"
type Config struct {
	Assets   string  `toml:"assets"`
	Density  float64 `toml:"density"`
	Resizer  string  `toml:"resizer"`
	LogLevel string  `toml:"log_level"`
}

// Default is the configuration used for unset keys.
func Default() *Config {
	return &Config{
		Assets:   `.`,
		Density:  1,
		Resizer:  ``,
		LogLevel: `warn`,
	}
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(err)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, errors.WrapPrefix(err, path, 0)
	}
	return c, nil
}

// Parse decodes and validates b. Keys missing in b keep their defaults,
// unknown keys are an error.
func Parse(b []byte) (*Config, error) {
	c := Default()
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, errors.New(err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the value ranges. The resizer name is checked by its
// consumer.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NilReceiver()
	}
	if !patch.ValidDensity(c.Density) {
		return errors.Errorf(`density must be a finite number of at least 1, got %v`, c.Density)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level is the parsed log level. Invalid levels map to slog.LevelWarn.
func (c *Config) Level() slog.Level {
	if c == nil {
		return slog.LevelWarn
	}
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if len(s) == 0 {
		return slog.LevelWarn, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, errors.Errorf(`invalid log level %q`, s)
	}
	return lvl, nil
}

// Marshal encodes c as TOML.
func (c *Config) Marshal() ([]byte, error) {
	if c == nil {
		return nil, errors.NilReceiver()
	}
	b, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.New(err)
	}
	return b, nil
}
