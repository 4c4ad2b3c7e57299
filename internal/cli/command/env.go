package command

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/minidb-go/internal/cli/output"
	"github.com/yndnr/minidb-go/internal/config"
	"github.com/yndnr/minidb-go/internal/infra/confloader"
	"github.com/yndnr/minidb-go/internal/infra/shutdown"
	"github.com/yndnr/minidb-go/internal/storage"
	"github.com/yndnr/minidb-go/internal/telemetry/logger"
	"github.com/yndnr/minidb-go/internal/telemetry/metric"
)

const shutdownTimeout = 5 * time.Second

// env holds what every command needs: configuration, logging, metrics
// and the cleanup hooks run when the command finishes.
type env struct {
	cfg      *config.Config
	loader   *confloader.Loader
	log      logger.Logger
	registry *prometheus.Registry
	metrics  *metric.StoreMetrics
	shutdown *shutdown.Handler
	errOut   io.Writer
}

func newEnv(file string, overrides map[string]any, errOut io.Writer) (*env, error) {
	loader, err := config.NewLoader(file, overrides)
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadFrom(loader)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: errOut,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	reg := metric.NewRegistry()
	return &env{
		cfg:      cfg,
		loader:   loader,
		log:      log,
		registry: reg,
		metrics:  metric.NewStoreMetrics(reg),
		shutdown: shutdown.NewHandler(shutdownTimeout),
		errOut:   errOut,
	}, nil
}

// openStore opens the configured snapshot, warning on stderr when it had
// to start empty because the file was unreadable.
func (e *env) openStore() (*storage.RecordStore, error) {
	store, err := storage.Open(storage.Config{
		Path:            e.cfg.Storage.Path,
		OnCommitFailure: storage.CommitFailurePolicy(e.cfg.Storage.OnCommitFailure),
		Logger:          e.log.Slog(),
		Metrics:         e.metrics,
	})
	if err != nil {
		return nil, err
	}
	if store.Recovered() {
		fmt.Fprintf(e.errOut, "warning: snapshot %s is unreadable; starting with an empty store, the file is replaced on the next insert\n", store.Path())
	}
	return store, nil
}

func (e *env) formatter() output.Formatter {
	return output.NewFormatter(e.format())
}

func (e *env) format() output.Format {
	return output.Format(e.cfg.CLI.Output)
}

// startMetrics binds the metrics listener if one is configured. The
// caller serves it; Shutdown stops it.
func (e *env) startMetrics() (*metric.Server, error) {
	if e.cfg.Metrics.Addr == "" {
		return nil, nil
	}
	srv, err := metric.Listen(e.cfg.Metrics.Addr, e.registry, e.log.Slog())
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}
	e.shutdown.OnShutdown(srv.Shutdown)
	return srv, nil
}

// watchConfig reloads the configuration file when it changes and applies
// the new log level. Other keys take effect on the next start.
func (e *env) watchConfig() {
	path := e.loader.FilePath()
	if path == "" {
		return
	}
	w, err := confloader.NewWatcher(path, confloader.WithWatcherLogger(e.log.Slog()))
	if err != nil {
		e.log.Warn("config watch disabled", "path", path, "error", err)
		return
	}
	w.OnChange(e.reload)
	w.StartAsync()
	e.shutdown.OnShutdown(func(context.Context) error {
		return w.Stop()
	})
}

func (e *env) reload(path string) {
	cfg, err := config.LoadFrom(e.loader)
	if err != nil {
		e.log.Warn("config reload rejected", "path", path, "error", err)
		return
	}
	if cfg.Log.Level != logger.GetLevel() {
		logger.SetLevel(cfg.Log.Level)
		e.log.Info("log level changed", "level", cfg.Log.Level)
	}
}
