package config

import (
	"fmt"
	"strings"

	"github.com/bnema/toolip/internal/domain/entity"
)

const maxIconSize = 256

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "warning": true,
	"error": true, "fatal": true, "panic": true,
}

// validateConfig checks every section and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validatePanel(config)...)
	validationErrors = append(validationErrors, validateStorage(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !validLogLevels[config.Logging.Level] {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, fatal, panic (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json", "text":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console, json or text (got %q)", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	if config.Logging.EnableFileLog && config.Logging.LogDir == "" {
		validationErrors = append(validationErrors, "logging.log_dir is required when enable_file_log is set")
	}
	return validationErrors
}

func validatePanel(config *Config) []string {
	var validationErrors []string

	switch entity.DefaultListName(config.Panel.DefaultList) {
	case entity.DefaultListStandard, entity.DefaultListExtended:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("panel.default_list must be standard or extended (got %q)", config.Panel.DefaultList))
	}

	validationErrors = append(validationErrors, validateIconTemplate(config.Panel.Icon.Template)...)
	if config.Panel.Icon.Size < 1 || config.Panel.Icon.Size > maxIconSize {
		validationErrors = append(validationErrors, fmt.Sprintf("panel.icon.size must be between 1 and %d", maxIconSize))
	}

	fc := config.Panel.FrameCache
	if fc.MaxSurfaces < 0 {
		validationErrors = append(validationErrors, "panel.frame_cache.max_surfaces must be non-negative")
	}
	switch fc.Policy {
	case FrameCacheUnbounded:
	case FrameCacheLRU:
		if fc.MaxSurfaces == 0 {
			validationErrors = append(validationErrors, "panel.frame_cache.max_surfaces must be positive with the lru policy")
		}
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("panel.frame_cache.policy must be unbounded or lru (got %q)", fc.Policy))
	}
	return validationErrors
}

// validateIconTemplate requires exactly one %s (host) followed by one %d (size).
func validateIconTemplate(template string) []string {
	hostAt := strings.Index(template, "%s")
	sizeAt := strings.Index(template, "%d")
	if strings.Count(template, "%s") != 1 || strings.Count(template, "%d") != 1 || hostAt > sizeAt {
		return []string{"panel.icon.template must contain one %s (host) followed by one %d (size)"}
	}
	if strings.Count(template, "%") != 2 {
		return []string{"panel.icon.template must not contain other format verbs"}
	}
	return nil
}

func validateStorage(config *Config) []string {
	if config.Storage.WatchDebounceMs < 0 {
		return []string{"storage.watch_debounce_ms must be non-negative"}
	}
	return nil
}

// normalizeConfig fixes case and fills values left empty by hand-edited files.
func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Panel.DefaultList = strings.ToLower(strings.TrimSpace(config.Panel.DefaultList))
	config.Panel.FrameCache.Policy = strings.ToLower(strings.TrimSpace(config.Panel.FrameCache.Policy))

	if config.Logging.Level == "" {
		config.Logging.Level = defaultLoggingLevel
	}
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLoggingFormat
	}
	if config.Panel.DefaultList == "" {
		config.Panel.DefaultList = string(entity.DefaultListStandard)
	}
	if config.Panel.FrameCache.Policy == "" {
		config.Panel.FrameCache.Policy = FrameCacheUnbounded
	}
}
