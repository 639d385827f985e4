package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/twiced-technology-gmbh/tasklist/internal/clierr"
	"github.com/twiced-technology-gmbh/tasklist/internal/logging"
	"github.com/twiced-technology-gmbh/tasklist/internal/query"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds settings that flags can also set. A config file is only read
// when --config names one; otherwise Default applies.
type Config struct {
	Version     int         `yaml:"version"`
	DataFile    string      `yaml:"data_file"`
	ActivityLog string      `yaml:"activity_log"`
	LogLevel    string      `yaml:"log_level"`
	Color       *bool       `yaml:"color,omitempty"`
	Print       PrintConfig `yaml:"print"`

	// LegacySort is the top-level sort key of version 0 files. Migration
	// moves it to Print.Sort.
	LegacySort string `yaml:"sort,omitempty"`

	// dir is the directory relative paths resolve against (not serialized).
	dir string `yaml:"-"`
}

// PrintConfig holds defaults for the print command.
type PrintConfig struct {
	Sort string `yaml:"sort"`
}

// Default returns the configuration used without a config file.
func Default() *Config {
	return &Config{
		Version:  CurrentVersion,
		DataFile: DefaultDataFile,
		LogLevel: DefaultLogLevel,
		Color:    boolPtr(true),
		Print:    PrintConfig{Sort: DefaultSort},
	}
}

// Load reads, migrates and validates the config file at path. Unset keys
// keep their defaults. Relative paths in the file resolve against the
// file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from flag
	if err != nil {
		return nil, clierr.Wrap(clierr.InvalidConfig, "reading config", err).
			WithDetails(map[string]any{"path": path})
	}

	cfg := Default()
	cfg.Version = 0 // absent key means a pre-versioned file
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, clierr.Wrap(clierr.InvalidConfig, "parsing config", err).
			WithDetails(map[string]any{"path": path})
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	cfg.dir = filepath.Dir(absPath)

	if err := migrate(cfg); err != nil {
		return nil, clierr.Wrap(clierr.InvalidConfig, "migrating config", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, clierr.Wrap(clierr.InvalidConfig, "validating config", err)
	}
	return cfg, nil
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %d (expected %d)", ErrInvalid, c.Version, CurrentVersion)
	}
	if c.DataFile == "" {
		return fmt.Errorf("%w: data_file is required", ErrInvalid)
	}
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalid, c.LogLevel)
	}
	if c.LegacySort != "" {
		return fmt.Errorf("%w: top-level sort is not a version %d key; use print.sort", ErrInvalid, CurrentVersion)
	}
	if c.Print.Sort != "" {
		if err := query.ValidateSortField(c.Print.Sort); err != nil {
			return fmt.Errorf("%w: print.sort: %w", ErrInvalid, err)
		}
	}
	return nil
}

// Dir returns the directory of the loaded config file, or "" for defaults.
func (c *Config) Dir() string {
	return c.dir
}

// Resolve makes a relative path from the config file absolute against the
// file's directory. Paths from defaults are returned unchanged.
func (c *Config) Resolve(path string) string {
	if path == "" || c.dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.dir, path)
}

// DataPath returns the resolved task file path.
func (c *Config) DataPath() string {
	return c.Resolve(c.DataFile)
}

// ActivityPath returns the resolved activity log path, or "" when disabled.
func (c *Config) ActivityPath() string {
	return c.Resolve(c.ActivityLog)
}

// ColorEnabled reports whether companion commands may style output.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}
