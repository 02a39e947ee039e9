// SPDX-License-Identifier: EPL-2.0

// Package config loads dgaudio settings from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ik5/dgaudio/engine"
)

const (
	BackendOto  = "oto"
	BackendNull = "null"
)

var ErrInvalid = errors.New("invalid config")

// Config holds all configuration options for dgaudio.
type Config struct {
	// AssetDir is the directory holding sound/ with the wav and mp3 files.
	AssetDir string `yaml:"asset_dir"`
	// WAD is an optional IWAD or PWAD used for lump lookups.
	WAD string `yaml:"wad"`
	// Backend selects the output: "oto" or "null".
	Backend    string        `yaml:"backend"`
	SampleRate int           `yaml:"sample_rate"`
	Channels   int           `yaml:"channels"`
	BufferSize time.Duration `yaml:"buffer_size"`
	// SfxPrefix adds "ds" to sound lump names, as Doom does.
	SfxPrefix bool   `yaml:"sfx_prefix"`
	LogLevel  string `yaml:"log_level"`
}

func Default() Config {
	ec := engine.DefaultConfig()
	return Config{
		AssetDir:   ec.AssetDir,
		Backend:    BackendOto,
		SampleRate: ec.SampleRate,
		Channels:   ec.Channels,
		BufferSize: ec.BufferSize,
		SfxPrefix:  true,
		LogLevel:   "info",
	}
}

// Parse reads YAML over the defaults, so missing keys keep their default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendOto, BackendNull:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}

	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if err := c.Engine().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}

func (c Config) Engine() engine.Config {
	return engine.Config{
		AssetDir:   c.AssetDir,
		SampleRate: c.SampleRate,
		Channels:   c.Channels,
		BufferSize: c.BufferSize,
	}
}
