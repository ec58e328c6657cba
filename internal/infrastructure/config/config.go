// Package config provides configuration management for toolip with Viper integration.
package config

import (
	"time"

	"github.com/bnema/toolip/internal/domain/entity"
	domainurl "github.com/bnema/toolip/internal/domain/url"
	"github.com/bnema/toolip/internal/logging"
)

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for toolip.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" toml:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging"`
	Panel    PanelConfig    `mapstructure:"panel" toml:"panel"`
	Storage  StorageConfig  `mapstructure:"storage" toml:"storage"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	// Path to the settings database. Empty means $XDG_DATA_HOME/toolip/toolip.sqlite.
	Path string `mapstructure:"path" toml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level"`
	Format        string `mapstructure:"format" toml:"format"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days"`
}

// PanelConfig controls the site list and the sidebar panel.
type PanelConfig struct {
	// DefaultList is the built-in list used when nothing is stored: "standard" or "extended".
	DefaultList string           `mapstructure:"default_list" toml:"default_list"`
	Icon        IconConfig       `mapstructure:"icon" toml:"icon"`
	FrameCache  FrameCacheConfig `mapstructure:"frame_cache" toml:"frame_cache"`
}

// IconConfig configures automatic favicon URLs.
type IconConfig struct {
	// Template receives the host (%s) then the size (%d).
	Template string `mapstructure:"template" toml:"template"`
	Size     int    `mapstructure:"size" toml:"size"`
}

// FrameCacheConfig bounds how many site surfaces the panel keeps alive.
type FrameCacheConfig struct {
	// Policy is "unbounded" (never evict) or "lru".
	Policy      string `mapstructure:"policy" toml:"policy"`
	MaxSurfaces int    `mapstructure:"max_surfaces" toml:"max_surfaces"`
}

// StorageConfig controls cross-process change detection.
type StorageConfig struct {
	WatchDebounceMs int `mapstructure:"watch_debounce_ms" toml:"watch_debounce_ms"`
}

// Frame cache policies.
const (
	FrameCacheUnbounded = "unbounded"
	FrameCacheLRU       = "lru"
)

// IconStyle converts the icon section for the site registry.
func (c *Config) IconStyle() domainurl.IconStyle {
	return domainurl.IconStyle{Template: c.Panel.Icon.Template, Size: c.Panel.Icon.Size}
}

// DefaultListName returns the configured built-in list.
func (c *Config) DefaultListName() entity.DefaultListName {
	return entity.DefaultListName(c.Panel.DefaultList)
}

// WatchDebounce returns the storage watcher debounce as a duration.
func (c *Config) WatchDebounce() time.Duration {
	return time.Duration(c.Storage.WatchDebounceMs) * time.Millisecond
}

// LoggerConfig converts the logging section for the logging package.
func (c *Config) LoggerConfig() (logging.Config, logging.FileConfig) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(c.Logging.Level)
	logCfg.Format = c.Logging.Format

	return logCfg, logging.FileConfig{
		Enabled:       c.Logging.EnableFileLog,
		LogDir:        c.Logging.LogDir,
		MaxSizeMB:     c.Logging.MaxSizeMB,
		MaxBackups:    c.Logging.MaxBackups,
		MaxAgeDays:    c.Logging.MaxAgeDays,
		WriteToStderr: true,
	}
}
