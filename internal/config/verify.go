package config

import (
	"net"

	"github.com/yndnr/minidb-go/internal/cli/output"
	"github.com/yndnr/minidb-go/internal/core/domain"
	"github.com/yndnr/minidb-go/internal/storage"
	"github.com/yndnr/minidb-go/internal/telemetry/logger"
)

// Verify validates the configuration. Errors wrap domain.ErrInvalidConfig.
func Verify(cfg *Config) error {
	if err := verifyStorage(&cfg.Storage); err != nil {
		return err
	}
	if err := verifyLog(&cfg.Log); err != nil {
		return err
	}
	if cfg.Metrics.Addr != "" {
		if _, _, err := net.SplitHostPort(cfg.Metrics.Addr); err != nil {
			return domain.ErrInvalidConfig.WithDetailsf("metrics.addr %q", cfg.Metrics.Addr).Wrap(err)
		}
	}
	if !output.ValidFormat(cfg.CLI.Output) {
		return domain.ErrInvalidConfig.WithDetailsf("cli.output must be one of %v, got %q", output.Formats(), cfg.CLI.Output)
	}
	return nil
}

func verifyStorage(cfg *StorageSection) error {
	if cfg.Path == "" {
		return domain.ErrInvalidConfig.WithDetails("storage.path is required")
	}
	if !storage.CommitFailurePolicy(cfg.OnCommitFailure).Valid() {
		return domain.ErrInvalidConfig.WithDetailsf("storage.on_commit_failure must be rollback or keep, got %q", cfg.OnCommitFailure)
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	if !logger.ValidLevel(cfg.Level) {
		return domain.ErrInvalidConfig.WithDetailsf("log.level %q", cfg.Level)
	}
	if !logger.ValidFormat(cfg.Format) {
		return domain.ErrInvalidConfig.WithDetailsf("log.format must be text or json, got %q", cfg.Format)
	}
	return nil
}
