package telemetry

import (
	"database/sql"

	"codeberg.org/mutker/powersaverd/internal/errors"
)

// SchemaVersion is bumped whenever power_ticks changes shape.
const SchemaVersion = 1

const (
	createTablesSQL = `
	   CREATE TABLE IF NOT EXISTS schema_versions (
	       version     INTEGER PRIMARY KEY,
	       applied_at  TEXT NOT NULL
	   );
	   CREATE TABLE IF NOT EXISTS power_ticks (
	       timestamp          INTEGER NOT NULL,
	       session_id         TEXT NOT NULL,
	       battery_present    INTEGER NOT NULL CHECK (battery_present IN (0, 1)),
	       battery_percent    INTEGER CHECK (battery_percent IS NULL OR (battery_percent >= 0 AND battery_percent <= 100)),
	       charging           INTEGER NOT NULL CHECK (charging IN (0, 1)),
	       brightness_current TEXT NOT NULL,
	       brightness_target  TEXT NOT NULL,
	       alerted            INTEGER NOT NULL CHECK (alerted IN (0, 1)),
	       PRIMARY KEY (timestamp, session_id)
	   );`

	insertTickSQL = `
    INSERT INTO power_ticks (
        timestamp, session_id,
        battery_present, battery_percent, charging,
        brightness_current, brightness_target, alerted
    ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    ON CONFLICT(timestamp, session_id) DO UPDATE SET
        battery_present = excluded.battery_present,
        battery_percent = excluded.battery_percent,
        charging = excluded.charging,
        brightness_current = excluded.brightness_current,
        brightness_target = excluded.brightness_target,
        alerted = excluded.alerted`
)

// schemaVersion returns the version recorded in the database. A fresh file
// without a schema_versions table reads as version 0.
func schemaVersion(db *sql.DB) (int, error) {
	errFactory := errors.New()

	exists, err := tableExists(db, "schema_versions")
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, nil
	}

	var version int
	err = db.QueryRow(`
        SELECT version
        FROM schema_versions
        ORDER BY version DESC
        LIMIT 1
    `).Scan(&version)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, errFactory.Wrap(ErrSchemaValidationFailed, err)
	}

	return version, nil
}

func tableExists(db *sql.DB, name string) (bool, error) {
	var exists bool
	err := db.QueryRow(`
        SELECT EXISTS (
            SELECT 1 FROM sqlite_master
            WHERE type='table' AND name=?
        )
    `, name).Scan(&exists)
	if err != nil {
		return false, errors.New().WithData(ErrSchemaValidationFailed, name)
	}

	return exists, nil
}
