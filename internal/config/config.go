// Package config loads divzero-scan settings.
//
// Settings come from a YAML or TOML file, then DIVZERO_* environment variables override them:
//
//	locale: ru
//	include: ["**/*.cs"]
//	exclude: ["**/obj/**", "**/bin/**"]
//	workers: 8
//	color: auto
package config

import (
	"encoding"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding file settings.
const (
	EnvLocale  = "DIVZERO_LOCALE"
	EnvWorkers = "DIVZERO_WORKERS"
)

// Config of a scan.
type Config struct {
	Locale  string    `yaml:"locale" toml:"locale"`
	Include []string  `yaml:"include" toml:"include"`
	Exclude []string  `yaml:"exclude" toml:"exclude"`
	Workers int       `yaml:"workers" toml:"workers"`
	Color   ColorMode `yaml:"color" toml:"color"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Include: []string{"**/*.cs", "**/*.go"},
		Exclude: []string{"**/bin/**", "**/obj/**", "**/vendor/**", "**/.git/**"},
		Workers: runtime.GOMAXPROCS(0),
		Color:   ColorModeAuto,
	}
}

// Load reads settings from the file over the defaults. The format is chosen by extension.
// An empty path gives defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %s does not exist", path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode yaml config %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode toml config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides settings with environment variables.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvLocale); ok {
		c.Locale = v
	}

	if v, ok := os.LookupEnv(EnvWorkers); ok && v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvWorkers, err)
		}
		c.Workers = workers
	}

	return c.validate()
}

func (c *Config) validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if len(c.Include) == 0 {
		return errors.New("no include patterns")
	}

	return nil
}

// ColorMode controls colored output.
type ColorMode int

const (
	colorModeInvalid ColorMode = iota
	ColorModeAuto
	ColorModeOn
	ColorModeOff
)

var colorModeValueMap = map[ColorMode]string{
	ColorModeAuto: "auto",
	ColorModeOn:   "on",
	ColorModeOff:  "off",
}

func (m ColorMode) String() string {
	v, ok := colorModeValueMap[m]
	if !ok {
		return fmt.Sprintf("invalid(%d)", m)
	}

	return v
}

var (
	_ encoding.TextMarshaler   = ColorMode(0)
	_ encoding.TextUnmarshaler = (*ColorMode)(nil)
)

func (m ColorMode) MarshalText() ([]byte, error) {
	v, ok := colorModeValueMap[m]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid ColorMode(%d)", m)
	}

	return []byte(v), nil
}

// UnmarshalText for setting values with configs, CLI, etc.
func (m *ColorMode) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range colorModeValueMap {
		if v == text {
			*m = k
			return nil
		}
	}

	return fmt.Errorf("unknown color mode %q", text)
}
