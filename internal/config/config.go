package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	appLog "github.com/Tiliavir/trivial-calendar/internal/log"
)

// Config is the root configuration for tcal, stored in ~/.tcal/config.yaml.
type Config struct {
	// DataDir holds the entry and filter snapshots. Empty means ~/.tcal.
	DataDir string `yaml:"data_dir"`
	// Storage selects the snapshot backend: "file" or "sqlite".
	Storage string `yaml:"storage"`
	// Timezone is the IANA zone entries are entered and shown in. Empty
	// means the system zone.
	Timezone string `yaml:"timezone"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	Meeting MeetingConfig `yaml:"meeting"`
}

// MeetingConfig holds defaults for `tcal add meeting`.
type MeetingConfig struct {
	DefaultPlatform string `yaml:"default_platform"`
	DefaultDuration int    `yaml:"default_duration"`
}

const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"

	DefaultLogLevel        = "warn"
	DefaultPlatform        = "zoom"
	DefaultDurationMinutes = 30
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Storage:  StorageFile,
		LogLevel: DefaultLogLevel,
		Meeting: MeetingConfig{
			DefaultPlatform: DefaultPlatform,
			DefaultDuration: DefaultDurationMinutes,
		},
	}
}

// Normalize fills zero values with defaults so a partially filled file still
// yields a usable Config.
func (c *Config) Normalize() {
	switch strings.ToLower(c.Storage) {
	case StorageFile, StorageSQLite:
		c.Storage = strings.ToLower(c.Storage)
	case "":
		c.Storage = StorageFile
	default:
		appLog.Warn("unknown storage backend, using file", "storage", c.Storage)
		c.Storage = StorageFile
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Meeting.DefaultPlatform == "" {
		c.Meeting.DefaultPlatform = DefaultPlatform
	}
	if c.Meeting.DefaultDuration <= 0 {
		c.Meeting.DefaultDuration = DefaultDurationMinutes
	}
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// configTemplate is written on first run so users can discover the options.
const configTemplate = `# tcal configuration - ~/.tcal/config.yaml
#
# All settings are optional; the defaults below work out of the box.

# Directory for calendarEntries / calendarFilters. Empty means ~/.tcal.
data_dir: ""

# Snapshot backend: "file" (one JSON file per key) or "sqlite" (tcal.db).
storage: file

# IANA timezone for entering and showing entries, e.g. "Europe/Berlin".
# Leave empty to use the system timezone.
timezone: ""

# debug, info, warn or error. Logs go to stderr.
log_level: warn

meeting:
  # zoom, teams or other. Can be overridden with: tcal add meeting --platform
  default_platform: zoom
  # Minutes. Can be overridden with: tcal add meeting --duration
  default_duration: 30
`

// DefaultPath returns ~/.tcal/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".tcal", "config.yaml"), nil
}

// Load reads the YAML config at path, creating it with the annotated
// defaults on first run. An empty path means DefaultPath. On a parse error
// the defaults are returned together with the error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return DefaultConfig(), err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if writeErr := writeDefault(path); writeErr != nil {
			appLog.Warn("could not create config file", "path", path, "err", writeErr)
		}
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	cfg.Normalize()
	return &cfg, nil
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return writeAtomic(path, []byte(configTemplate))
}

// Save writes cfg as YAML, replacing the file atomically.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}
	cfg.Normalize()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tcal-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
