package config

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default values.
const (
	DefaultColor     = ColorAuto
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for tasks.
type Config struct {
	// Paths (computed)
	Dir         string `toml:"-"` // directory holding the executable
	StorageFile string `toml:"-"`
	ConfigFile  string `toml:"-"` // config file that was read, if any

	// Output
	Color string `toml:"color"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`
}

// UseColor reports whether styled output should be written, given
// whether stdout is a terminal.
func (c *Config) UseColor(terminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return terminal
	}
}

func setDefaults(cfg *Config) {
	cfg.Color = DefaultColor
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}
