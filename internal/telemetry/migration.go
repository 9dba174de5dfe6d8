package telemetry

import (
	"database/sql"

	"codeberg.org/mutker/powersaverd/internal/errors"
	"codeberg.org/mutker/powersaverd/internal/logger"
)

// ensureSchema compares the recorded schema version with SchemaVersion and
// rebuilds the schema when they differ. Tick rows are disposable
// diagnostics, so a stale schema is dropped rather than migrated.
func ensureSchema(db *sql.DB, log logger.Logger) error {
	version, err := schemaVersion(db)
	if err != nil {
		return err
	}

	if version == SchemaVersion {
		log.Debug().Int("version", version).Msg("Schema version is current")
		return nil
	}

	if version != 0 {
		log.Warn().
			Int("found", version).
			Int("want", SchemaVersion).
			Msg("Telemetry schema version mismatch, recreating")

		if err := dropSchema(db); err != nil {
			return err
		}
	}

	return createSchema(db, log)
}

func createSchema(db *sql.DB, log logger.Logger) error {
	errFactory := errors.New()

	err := inTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(createTablesSQL); err != nil {
			return err
		}

		_, err := tx.Exec(`
            INSERT INTO schema_versions (version, applied_at)
            VALUES (?, datetime('now'))
        `, SchemaVersion)

		return err
	})
	if err != nil {
		return errFactory.Wrap(ErrSchemaInitFailed, err)
	}

	log.Debug().Int("version", SchemaVersion).Msg("Schema initialized")

	return nil
}

func dropSchema(db *sql.DB) error {
	errFactory := errors.New()

	err := inTx(db, func(tx *sql.Tx) error {
		for _, table := range []string{"power_ticks", "schema_versions"} {
			if _, err := tx.Exec("DROP TABLE IF EXISTS " + table); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return errFactory.Wrap(ErrSchemaMigrationFailed, err)
	}

	return nil
}

// inTx runs fn inside a transaction, rolling back when fn fails.
func inTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.Debug().Err(rbErr).Msg("Failed to rollback transaction")
		}

		return err
	}

	return tx.Commit()
}
