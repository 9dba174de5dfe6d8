package telemetry

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	"codeberg.org/mutker/powersaverd/internal/errors"
	"codeberg.org/mutker/powersaverd/internal/logger"

	_ "github.com/mattn/go-sqlite3"
)

type sqliteRepository struct {
	db        *sql.DB
	sessionID string
	mu        sync.Mutex
}

func NewRepository(cfg Config, sessionID string) (Repository, error) {
	errFactory := errors.New()

	if cfg.DBPath == "" {
		return nil, errFactory.New(ErrInvalidDBPath)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), defaultDirPerm); err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	// WAL keeps tick writes from blocking on fsync every interval.
	dsn := cfg.DBPath + "?_journal=WAL&_auto_vacuum=2"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	if err := ensureSchema(db, logger.Default()); err != nil {
		db.Close()
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	logger.Info().
		Str("path", cfg.DBPath).
		Int("schema_version", SchemaVersion).
		Msg("Telemetry repository initialized")

	return &sqliteRepository{
		db:        db,
		sessionID: sessionID,
	}, nil
}

func (r *sqliteRepository) Store(ctx context.Context, snapshot *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// An unknown percent is stored as NULL, never as a sentinel value.
	var percent any
	if snapshot.Battery.PercentKnown {
		percent = snapshot.Battery.Percent
	}

	_, err := r.db.ExecContext(ctx, insertTickSQL,
		snapshot.Timestamp.Unix(),
		r.sessionID,
		boolToInt(snapshot.Battery.Present),
		percent,
		boolToInt(snapshot.Battery.Charging),
		snapshot.Brightness.Current,
		snapshot.Brightness.Target,
		boolToInt(snapshot.Alerted),
	)
	if err != nil {
		return errors.New().Wrap(ErrStorageAccess, err)
	}

	return nil
}

func (r *sqliteRepository) Close() error {
	errFactory := errors.New()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return errFactory.WithMessage(ErrStorageClose, "checkpoint failed").WithData(err.Error())
	}

	if err := r.db.Close(); err != nil {
		return errFactory.Wrap(ErrStorageClose, err)
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
