package config

import (
	"os"
	"path/filepath"

	"github.com/rshade/storefront/internal/logging"
)

// ToLoggingConfig converts the config section into a logging.Config.
// A configured file switches the output to that file; otherwise logs go
// to stderr.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// DefaultLogFile returns the log file used by `config init`.
func DefaultLogFile() string {
	return filepath.Join(HomeDir(), "logs", "storefront.log")
}

// EnsureLogDir creates the directory of the configured log file.
func EnsureLogDir() error {
	file := GetLoggingConfig().File
	if file == "" {
		return nil
	}
	return os.MkdirAll(filepath.Dir(file), 0o750)
}
