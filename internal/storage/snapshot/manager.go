package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/minidb-go/internal/core/domain"
	"github.com/yndnr/minidb-go/internal/storage/fsys"
)

// ErrNotFound is returned by Load when no snapshot exists yet.
var ErrNotFound = errors.New("snapshot: not found")

const (
	tempSuffix = ".tmp"

	dirPerm  = 0o755
	filePerm = 0o644
)

// Config configures the snapshot manager.
type Config struct {
	// Path is the snapshot file location.
	Path string

	// FS performs the file operations. Defaults to fsys.Default.
	FS fsys.FS
}

// Manager owns one snapshot file.
type Manager struct {
	path string
	fs   fsys.FS
}

// NewManager creates the directory holding cfg.Path and returns a manager
// bound to it.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("snapshot: path is required")
	}
	if cfg.FS == nil {
		cfg.FS = fsys.Default
	}

	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := cfg.FS.MkdirAll(dir, dirPerm); err != nil {
			return nil, fmt.Errorf("snapshot: create dir %s: %w", dir, err)
		}
	}

	return &Manager{path: cfg.Path, fs: cfg.FS}, nil
}

// Info describes one written or loaded snapshot.
type Info struct {
	// ID identifies a commit; empty for loaded snapshots.
	ID string `json:"id,omitempty"`

	Path        string        `json:"path"`
	Size        int64         `json:"size"`
	Collections int           `json:"collections"`
	Records     int           `json:"records"`
	Duration    time.Duration `json:"duration"`
}

// Load reads and decodes the snapshot.
//
// It returns ErrNotFound if the file does not exist, an error wrapping
// ErrMalformed if the content cannot be decoded, and any other read error
// as is.
func (m *Manager) Load() (domain.State, *Info, error) {
	start := time.Now()

	data, err := m.fs.ReadFile(m.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("snapshot: read %s: %w", m.path, err)
	}

	state, err := Decode(data)
	if err != nil {
		return nil, nil, err
	}

	return state, &Info{
		Path:        m.path,
		Size:        int64(len(data)),
		Collections: len(state),
		Records:     state.RecordCount(),
		Duration:    time.Since(start),
	}, nil
}

// Save replaces the snapshot with state.
//
// The content is written to <path>.<id>.tmp, synced and renamed over the
// target, so the previous snapshot stays intact if any step fails.
func (m *Manager) Save(state domain.State) (*Info, error) {
	start := time.Now()
	id := ulid.Make().String()

	data, err := Encode(state)
	if err != nil {
		return nil, err
	}

	tempPath := m.path + "." + id + tempSuffix
	file, err := m.fs.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC|os.O_EXCL, filePerm)
	if err != nil {
		return nil, fmt.Errorf("snapshot: create temp file: %w", err)
	}

	if err := writeAndSync(file, data); err != nil {
		_ = m.fs.Remove(tempPath)
		return nil, err
	}

	if err := m.fs.Rename(tempPath, m.path); err != nil {
		_ = m.fs.Remove(tempPath)
		return nil, fmt.Errorf("snapshot: rename: %w", err)
	}

	return &Info{
		ID:          id,
		Path:        m.path,
		Size:        int64(len(data)),
		Collections: len(state),
		Records:     state.RecordCount(),
		Duration:    time.Since(start),
	}, nil
}

// writeAndSync writes data and closes file, reporting the first failure.
func writeAndSync(file fsys.File, data []byte) error {
	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("snapshot: write: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("snapshot: sync: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("snapshot: close: %w", err)
	}
	return nil
}
