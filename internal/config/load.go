package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nibzard/tasks-go/internal/appdir"
)

// Load loads configuration for an executable living in dir:
// 1. Defaults
// 2. Config file (tasks.toml in dir)
// 3. Environment variables
func Load(dir string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load the config file
	path := appdir.ConfigPath(dir)
	found, err := loadConfigFile(cfg, path)
	if err != nil {
		return nil, fmt.Errorf("loading config file %s: %w", path, err)
	}
	if found {
		cfg.ConfigFile = path
	}

	// 3. Override from environment
	loadFromEnv(cfg)

	// 4. Compute derived values
	cfg.Dir = dir
	cfg.StorageFile = appdir.StoragePath(dir)
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cfg, nil
}

// loadConfigFile decodes TOML from path into cfg. A missing file is not
// an error.
func loadConfigFile(cfg *Config, path string) (bool, error) {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return true, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return true, nil
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKS_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TASKS_COLOR"); v != "" {
		cfg.Color = v
	}
	// https://no-color.org
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.Color = ColorNever
	}
}

// finalizeConfig normalizes and validates enum values.
func finalizeConfig(cfg *Config) error {
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", cfg.Color)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("invalid log_level %q, must be one of: debug, info, warn, error, fatal", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log_format %q, must be one of: text, json, logfmt", cfg.LogFormat)
	}
	return nil
}
