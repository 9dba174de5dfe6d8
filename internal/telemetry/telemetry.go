// Package telemetry records one row per monitor tick into a local SQLite
// database for later inspection. Recording is opt-in; the disabled service
// is a no-op collector so the monitor never branches on it.
package telemetry

import (
	"context"

	"codeberg.org/mutker/powersaverd/internal/errors"
	"codeberg.org/mutker/powersaverd/internal/logger"
	"github.com/google/uuid"
)

type service struct {
	repo Repository
}

type noopCollector struct{}

func NewService(cfg Config) (Collector, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(ErrInvalidConfig, err)
	}

	if !cfg.Enabled {
		logger.Debug().Msg("Telemetry collection disabled, using no-op collector")
		return &noopCollector{}, nil
	}

	// Ticks from separate daemon runs share the database; the session id
	// tells them apart.
	sessionID := uuid.NewString()

	repo, err := NewRepository(cfg, sessionID)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("db_path", cfg.DBPath).
		Str("session_id", sessionID).
		Msg("Telemetry service initialized")

	return &service{repo: repo}, nil
}

func (s *service) Record(ctx context.Context, snapshot *Snapshot) error {
	errFactory := errors.New()

	if snapshot == nil {
		return errFactory.New(ErrInvalidSnapshot)
	}

	if err := ctx.Err(); err != nil {
		return errFactory.Wrap(ErrOperationTimeout, err)
	}

	if err := s.repo.Store(ctx, snapshot); err != nil {
		return errFactory.Wrap(ErrRecordFailed, err)
	}

	return nil
}

func (s *service) Close() error {
	if err := s.repo.Close(); err != nil {
		return errors.New().Wrap(ErrServiceShutdown, err)
	}

	return nil
}

func (*noopCollector) Record(context.Context, *Snapshot) error { return nil }

func (*noopCollector) Close() error { return nil }
