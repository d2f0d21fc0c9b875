package logging

import (
	"os"
	"strings"
)

// Environment variables read by LoadConfig.
const (
	EnvLevel  = "HOOKS_LOG_LEVEL"
	EnvCaller = "HOOKS_LOG_CALLER"
	EnvFormat = "HOOKS_LOG_FORMAT"
	EnvStderr = "HOOKS_LOG_STDERR"
	EnvDebug  = "HOOKS_DEBUG"
)

// Config defines the logging configuration.
type Config struct {
	// Level is the minimum log level to output (e.g., "debug", "info", "warn", "error").
	Level string

	// ReportCaller, if true, includes the file, line, and function name in the log output.
	ReportCaller bool

	// Format configures the appearance of the log output.
	Format FormatConfig
}

// FormatConfig controls the log output format.
type FormatConfig struct {
	// Preset can be "default" (rich text), "simple" (minimal text), or "json".
	Preset string
	// DisableTimestamp disables the timestamp from the "default" and "simple" formats.
	DisableTimestamp bool
	// DisableComponent disables the component name from the "default" and "simple" formats.
	DisableComponent bool
	// StructuredToStderr controls when logs are sent to stderr.
	// Can be "auto" (default), "always", or "never".
	StructuredToStderr string
}

// LoadConfig builds a Config from the HOOKS_LOG_* environment variables.
func LoadConfig() Config {
	cfg := Config{
		Level:        os.Getenv(EnvLevel),
		ReportCaller: os.Getenv(EnvCaller) == "true",
		Format: FormatConfig{
			Preset:             strings.ToLower(os.Getenv(EnvFormat)),
			StructuredToStderr: strings.ToLower(os.Getenv(EnvStderr)),
		},
	}
	if os.Getenv(EnvDebug) == "1" && cfg.Level == "" {
		cfg.Level = "debug"
	}
	return cfg
}
