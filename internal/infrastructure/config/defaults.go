package config

import (
	"github.com/bnema/toolip/internal/domain/entity"
	domainurl "github.com/bnema/toolip/internal/domain/url"
)

const (
	defaultLogMaxSizeMB    = 10
	defaultLogMaxBackups   = 3
	defaultLogMaxAgeDays   = 7
	defaultLRUMaxSurfaces  = 8
	defaultWatchDebounceMs = 150
	defaultLoggingLevel    = "info"
	defaultLoggingFormat   = "console"
)

// DefaultConfig returns the default configuration values for toolip.
func DefaultConfig() *Config {
	logDir, err := GetLogDir()
	if err != nil {
		logDir = ""
	}

	return &Config{
		Database: DatabaseConfig{
			// Resolved to the XDG data dir on load.
			Path: "",
		},
		Logging: LoggingConfig{
			Level:         defaultLoggingLevel,
			Format:        defaultLoggingFormat,
			EnableFileLog: false,
			LogDir:        logDir,
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			MaxAgeDays:    defaultLogMaxAgeDays,
		},
		Panel: PanelConfig{
			DefaultList: string(entity.DefaultListStandard),
			Icon: IconConfig{
				Template: domainurl.DefaultIconTemplate,
				Size:     domainurl.DefaultIconSize,
			},
			FrameCache: FrameCacheConfig{
				Policy:      FrameCacheUnbounded,
				MaxSurfaces: defaultLRUMaxSurfaces,
			},
		},
		Storage: StorageConfig{
			WatchDebounceMs: defaultWatchDebounceMs,
		},
	}
}
