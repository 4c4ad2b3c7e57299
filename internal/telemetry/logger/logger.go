package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Logger is the logging surface used by minidb components.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger

	// Slog returns the underlying *slog.Logger for components that take one.
	Slog() *slog.Logger
}

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds logger configuration.
type Config struct {
	// Level is debug, info, warn or error.
	Level string
	// Format is text or json.
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns the configuration used before any is loaded.
func DefaultConfig() Config {
	return Config{Level: "info", Format: FormatText, Output: os.Stderr}
}

// levels maps accepted level names to slog levels. levelNames holds the
// canonical name reported back by GetLevel.
var (
	levels = map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	levelNames = map[slog.Level]string{
		slog.LevelDebug: "debug",
		slog.LevelInfo:  "info",
		slog.LevelWarn:  "warn",
		slog.LevelError: "error",
	}
)

// level is shared by every logger New creates, so SetLevel applies to
// loggers already handed out.
var level = new(slog.LevelVar)

// New creates a logger. An unknown level or format is an error.
func New(cfg Config) (Logger, error) {
	lvl, ok := levels[strings.ToLower(cfg.Level)]
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", cfg.Level)
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	h, err := newHandler(out, cfg.Format)
	if err != nil {
		return nil, err
	}
	level.Set(lvl)
	return &slogLogger{logger: slog.New(h)}, nil
}

func newHandler(w io.Writer, format string) (slog.Handler, error) {
	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceAttr,
	}
	switch strings.ToLower(format) {
	case FormatText, "":
		return slog.NewTextHandler(w, opts), nil
	case FormatJSON:
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// Discard returns a logger that drops everything.
func Discard() Logger {
	return &slogLogger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// SetLevel changes the level of every logger. Unknown names select info.
func SetLevel(name string) {
	lvl, ok := levels[strings.ToLower(name)]
	if !ok {
		lvl = slog.LevelInfo
	}
	level.Set(lvl)
}

// GetLevel returns the canonical name of the current level.
func GetLevel() string {
	if name, ok := levelNames[level.Level()]; ok {
		return name
	}
	return "info"
}

// ValidLevel reports whether name is an accepted level name.
func ValidLevel(name string) bool {
	_, ok := levels[strings.ToLower(name)]
	return ok
}

// ValidFormat reports whether format is text or json.
func ValidFormat(format string) bool {
	switch format {
	case FormatText, FormatJSON:
		return true
	}
	return false
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *slogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

func (l *slogLogger) Slog() *slog.Logger {
	return l.logger
}

var defaultLogger atomic.Pointer[slogLogger]

func init() {
	h, _ := newHandler(os.Stderr, FormatText)
	defaultLogger.Store(&slogLogger{logger: slog.New(h)})
}

// SetDefault installs l as the package default and as the slog default.
func SetDefault(l Logger) {
	if sl, ok := l.(*slogLogger); ok {
		defaultLogger.Store(sl)
		slog.SetDefault(sl.logger)
	}
}

// Default returns the package default logger.
func Default() Logger {
	return defaultLogger.Load()
}
