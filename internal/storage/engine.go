package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/yndnr/minidb-go/internal/core/domain"
	"github.com/yndnr/minidb-go/internal/storage/fsys"
	"github.com/yndnr/minidb-go/internal/storage/snapshot"
	"github.com/yndnr/minidb-go/internal/telemetry/metric"
)

// DefaultPath is the snapshot location used when none is configured.
const DefaultPath = "data/db.json"

// CommitFailurePolicy decides what happens to the in-memory append when
// the commit that follows it fails.
type CommitFailurePolicy string

const (
	// PolicyRollback undoes the append so memory matches disk again.
	PolicyRollback CommitFailurePolicy = "rollback"

	// PolicyKeep leaves the record in memory and marks the store dirty;
	// the next successful commit writes it out.
	PolicyKeep CommitFailurePolicy = "keep"
)

// Valid reports whether p is a known policy.
func (p CommitFailurePolicy) Valid() bool {
	return p == PolicyRollback || p == PolicyKeep
}

// LoadStatus describes what Open found at the snapshot location.
type LoadStatus int

const (
	// LoadFresh means no snapshot existed; the store started empty.
	LoadFresh LoadStatus = iota

	// LoadRestored means the snapshot was read successfully.
	LoadRestored

	// LoadRecovered means the snapshot was unreadable and the store
	// started empty (recovery mode).
	LoadRecovered
)

func (s LoadStatus) String() string {
	switch s {
	case LoadFresh:
		return "fresh"
	case LoadRestored:
		return "restored"
	case LoadRecovered:
		return "recovered"
	default:
		return fmt.Sprintf("LoadStatus(%d)", int(s))
	}
}

// Config configures a RecordStore.
type Config struct {
	// Path is the snapshot file location. Empty means DefaultPath.
	Path string

	// OnCommitFailure selects the commit failure policy. Empty means
	// PolicyRollback.
	OnCommitFailure CommitFailurePolicy

	// FS performs file operations. Defaults to fsys.Default.
	FS fsys.FS

	// Logger is the structured logger. Defaults to slog.Default().
	Logger *slog.Logger

	// Metrics receives store observations. May be nil.
	Metrics *metric.StoreMetrics
}

// RecordStore is the in-memory collection map and its snapshot.
type RecordStore struct {
	cfg      Config
	state    domain.State
	snapshot *snapshot.Manager
	logger   *slog.Logger
	metrics  *metric.StoreMetrics

	status LoadStatus
	dirty  bool
}

// Open creates a store bound to cfg.Path and loads its snapshot.
//
// Failure to create the snapshot directory, or to read an existing
// snapshot, is returned as an error. Snapshot content that cannot be
// decoded is not: the store starts empty and LoadStatus reports
// LoadRecovered.
func Open(cfg Config) (*RecordStore, error) {
	if cfg.Path == "" {
		cfg.Path = DefaultPath
	}
	if cfg.OnCommitFailure == "" {
		cfg.OnCommitFailure = PolicyRollback
	}
	if !cfg.OnCommitFailure.Valid() {
		return nil, domain.ErrInvalidConfig.WithDetailsf("unknown commit failure policy %q", cfg.OnCommitFailure)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	mgr, err := snapshot.NewManager(snapshot.Config{Path: cfg.Path, FS: cfg.FS})
	if err != nil {
		return nil, domain.ErrStorageDir.WithDetails(cfg.Path).Wrap(err)
	}

	s := &RecordStore{
		cfg:      cfg,
		snapshot: mgr,
		logger:   cfg.Logger.With("path", cfg.Path),
		metrics:  cfg.Metrics,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load fills the in-memory state from the snapshot.
func (s *RecordStore) load() error {
	state, info, err := s.snapshot.Load()
	switch {
	case err == nil:
		s.state = state
		s.status = LoadRestored
		s.metrics.ObserveLoad(info.Size)
		s.logger.Info("snapshot loaded",
			"collections", info.Collections,
			"records", info.Records,
			"elapsed", info.Duration)

	case errors.Is(err, snapshot.ErrNotFound):
		s.state = domain.NewState()
		s.status = LoadFresh
		s.logger.Info("no snapshot found, starting with empty store")

	case errors.Is(err, snapshot.ErrMalformed):
		s.state = domain.NewState()
		s.status = LoadRecovered
		s.metrics.ObserveRecovery()
		s.logger.Warn("snapshot unreadable, starting empty",
			"recovery", true,
			"error", err)

	default:
		return domain.ErrSnapshotRead.WithDetails(s.cfg.Path).Wrap(err)
	}

	s.metrics.SetRecords(s.state.RecordCount())
	return nil
}

// Insert appends rec to collection, creating the collection if needed,
// then commits the full snapshot. It returns rec unchanged.
//
// A record that is not valid UTF-8 text is rejected with
// domain.ErrInvalidText before anything changes.
//
// A commit failure is returned as an error wrapping domain.ErrCommitFailed.
// Under PolicyRollback the append is undone before returning; under
// PolicyKeep it stays in memory and Dirty reports true until a later
// commit succeeds.
func (s *RecordStore) Insert(collection string, rec domain.Record) (domain.Record, error) {
	if err := rec.Validate(); err != nil {
		return rec, fmt.Errorf("insert into %q: %w", collection, err)
	}
	records, existed := s.state[collection]
	s.state[collection] = append(records, rec.Clone())
	if err := s.commit(); err != nil {
		if s.cfg.OnCommitFailure == PolicyRollback {
			s.rollback(collection, existed)
		} else {
			s.dirty = true
		}
		s.metrics.SetRecords(s.state.RecordCount())

		s.logger.Error("commit failed",
			"collection", collection,
			"policy", string(s.cfg.OnCommitFailure),
			"error", err)
		return rec, domain.ErrCommitFailed.WithDetailsf("insert into %q", collection).Wrap(err)
	}

	s.dirty = false
	s.metrics.ObserveInsert(collection)
	s.metrics.SetRecords(s.state.RecordCount())
	s.logger.Debug("record inserted",
		"collection", collection,
		"record", rec)
	return rec, nil
}

// rollback removes the record appended by the failed Insert.
func (s *RecordStore) rollback(collection string, existed bool) {
	if !existed {
		delete(s.state, collection)
		return
	}
	records := s.state[collection]
	s.state[collection] = records[:len(records)-1]
}

// commit overwrites the snapshot with the current state.
func (s *RecordStore) commit() error {
	start := time.Now()

	info, err := s.snapshot.Save(s.state)
	if err != nil {
		s.metrics.ObserveCommitFailure()
		return err
	}

	elapsed := time.Since(start)
	s.metrics.ObserveCommit(elapsed, info.Size)
	s.logger.Debug("commit complete",
		"commit_id", info.ID,
		"bytes", info.Size,
		"records", info.Records,
		"elapsed", elapsed)
	return nil
}

// SelectAll returns copies of every record in collection, in insertion
// order. An unknown collection yields an empty slice. It never touches disk.
func (s *RecordStore) SelectAll(collection string) []domain.Record {
	return domain.CloneRecords(s.state[collection])
}

// Collections returns the names of all collections, sorted.
func (s *RecordStore) Collections() []string {
	return s.state.Collections()
}

// Count returns the number of records in collection.
func (s *RecordStore) Count(collection string) int {
	return len(s.state[collection])
}

// Path returns the snapshot location.
func (s *RecordStore) Path() string {
	return s.cfg.Path
}

// LoadStatus reports what Open found at the snapshot location.
func (s *RecordStore) LoadStatus() LoadStatus {
	return s.status
}

// Recovered reports whether Open fell back to an empty state because the
// snapshot was unreadable.
func (s *RecordStore) Recovered() bool {
	return s.status == LoadRecovered
}

// Dirty reports whether memory holds records the snapshot does not.
// It can only be true under PolicyKeep.
func (s *RecordStore) Dirty() bool {
	return s.dirty
}
