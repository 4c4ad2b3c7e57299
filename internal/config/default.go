package config

import (
	"github.com/yndnr/minidb-go/internal/storage"
)

// Default configuration values.
const (
	DefaultStoragePath     = storage.DefaultPath
	DefaultOnCommitFailure = string(storage.PolicyRollback)

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	DefaultOutput = "table"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageSection{
			Path:            DefaultStoragePath,
			OnCommitFailure: DefaultOnCommitFailure,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		CLI: CLISection{
			Output: DefaultOutput,
		},
	}
}

// Map flattens c to dotted koanf keys.
func (c *Config) Map() map[string]any {
	return map[string]any{
		"storage.path":              c.Storage.Path,
		"storage.on_commit_failure": c.Storage.OnCommitFailure,
		"log.level":                 c.Log.Level,
		"log.format":                c.Log.Format,
		"metrics.addr":              c.Metrics.Addr,
		"cli.output":                c.CLI.Output,
		"cli.history_file":          c.CLI.HistoryFile,
	}
}

func defaultMap() map[string]any {
	return Default().Map()
}
