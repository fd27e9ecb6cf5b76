package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
)

// Log formats understood by pkg/logger.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Log outputs that name a standard stream rather than a file.
const (
	LogOutputStdout = "stdout"
	LogOutputStderr = "stderr"
)

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	// Level is any level zapcore.ParseLevel accepts.
	Level string
	// Format is json or console.
	Format string
	// Output is stdout, stderr or a file path opened for append.
	Output string
}

// LoadLoggerConfigFromEnv reads LOG_LEVEL, LOG_FORMAT and LOG_OUTPUT.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:  GetEnv("LOG_LEVEL", "info"),
		Format: GetEnv("LOG_FORMAT", LogFormatJSON),
		Output: GetEnv("LOG_OUTPUT", LogOutputStdout),
	}
}

// Validate rejects a level or format the logger cannot use, and a file
// output that cannot be opened for writing. A missing log file is created.
func (c LoggerConfig) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %s", c.Level)
	}

	switch c.Format {
	case LogFormatJSON, LogFormatConsole:
	default:
		return fmt.Errorf("invalid LOG_FORMAT: %s (must be: json, console)", c.Format)
	}

	switch c.Output {
	case "", LogOutputStdout, LogOutputStderr:
		return nil
	}
	f, err := os.OpenFile(c.Output, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("invalid LOG_OUTPUT: %w", err)
	}
	return f.Close()
}

// IsProduction reports whether pkg/logger should start from zap's production preset.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == LogFormatJSON && c.Level != "debug"
}
