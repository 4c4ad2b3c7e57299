package config

import (
	"github.com/yndnr/minidb-go/internal/core/domain"
	"github.com/yndnr/minidb-go/internal/infra/confloader"
)

// NewLoader returns a loader layering defaults, file (if non-empty),
// MINIDB_* environment variables and overrides, lowest priority first.
// Override keys use dotted form, e.g. "storage.path".
func NewLoader(file string, overrides map[string]any) (*confloader.Loader, error) {
	l := confloader.NewLoader(
		confloader.WithConfigFile(file),
		confloader.WithDefaults(defaultMap()),
	)
	if len(overrides) > 0 {
		if err := l.LoadMap(overrides); err != nil {
			return nil, domain.ErrInvalidConfig.WithDetails("flags").Wrap(err)
		}
	}
	return l, nil
}

// LoadFrom runs l and verifies the result. It may be called again after
// the file changes.
func LoadFrom(l *confloader.Loader) (*Config, error) {
	cfg := &Config{}
	if err := l.Load(cfg); err != nil {
		return nil, domain.ErrInvalidConfig.Wrap(err)
	}
	if err := Verify(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load builds and verifies the configuration in one step.
func Load(file string, overrides map[string]any) (*Config, error) {
	l, err := NewLoader(file, overrides)
	if err != nil {
		return nil, err
	}
	return LoadFrom(l)
}
