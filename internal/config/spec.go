package config

// Config is the root configuration for minidb.
type Config struct {
	Storage StorageSection `koanf:"storage" json:"storage" yaml:"storage"`
	Log     LogSection     `koanf:"log" json:"log" yaml:"log"`
	Metrics MetricsSection `koanf:"metrics" json:"metrics" yaml:"metrics"`
	CLI     CLISection     `koanf:"cli" json:"cli" yaml:"cli"`
}

// StorageSection configures the record store.
type StorageSection struct {
	// Path is the snapshot file.
	Path string `koanf:"path" json:"path" yaml:"path"`

	// OnCommitFailure is "rollback" or "keep".
	OnCommitFailure string `koanf:"on_commit_failure" json:"on_commit_failure" yaml:"on_commit_failure"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level" json:"level" yaml:"level"`
	Format string `koanf:"format" json:"format" yaml:"format"`
}

// MetricsSection configures the Prometheus endpoint. An empty Addr
// disables it.
type MetricsSection struct {
	Addr string `koanf:"addr" json:"addr" yaml:"addr"`
}

// CLISection configures the interactive front end.
type CLISection struct {
	Output      string `koanf:"output" json:"output" yaml:"output"`
	HistoryFile string `koanf:"history_file" json:"history_file" yaml:"history_file"`
}
