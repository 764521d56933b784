// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. Config file (tasks.toml beside the executable, optional)
// 3. Environment variables (TASKS_* and NO_COLOR)
//
// Each level overrides the previous one.
//
// Only presentation and logging are configurable. The storage file is
// always tasks.json beside the executable.
//
// Example tasks.toml:
//
//	color = "never"
//	log_level = "debug"
//	log_format = "logfmt"
//	log_timestamps = true
package config
