package telemetry_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/mutker/powersaverd/internal/errors"
	"codeberg.org/mutker/powersaverd/internal/telemetry"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceDisabled(t *testing.T) {
	collector, err := telemetry.NewService(telemetry.Config{Enabled: false})
	require.NoError(t, err)

	// The no-op collector accepts records without a database
	require.NoError(t, collector.Record(context.Background(), &telemetry.Snapshot{Timestamp: time.Now()}))
	require.NoError(t, collector.Close())
}

func TestNewServiceEnabledWithoutPath(t *testing.T) {
	_, err := telemetry.NewService(telemetry.Config{Enabled: true})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, telemetry.ErrInvalidConfig), "Expected telemetry_invalid_config, got %v", err)
}

func TestRecordRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "telemetry.db")

	collector, err := telemetry.NewService(telemetry.Config{DBPath: dbPath, Enabled: true})
	require.NoError(t, err)

	snapshot := &telemetry.Snapshot{
		Timestamp: time.Unix(1700000000, 0),
		Battery: telemetry.BatteryMetrics{
			Present:      true,
			Percent:      15,
			PercentKnown: true,
		},
		Brightness: telemetry.BrightnessMetrics{
			Current: "MEDIUM",
			Target:  "LOW",
		},
		Alerted: true,
	}
	require.NoError(t, collector.Record(context.Background(), snapshot))
	require.NoError(t, collector.Close())

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var (
		present, charging, alerted int
		percent                    sql.NullInt64
		current, target            string
		sessionID                  string
	)
	err = db.QueryRow(`
        SELECT battery_present, battery_percent, charging,
               brightness_current, brightness_target, alerted, session_id
        FROM power_ticks
    `).Scan(&present, &percent, &charging, &current, &target, &alerted, &sessionID)
	require.NoError(t, err)

	assert.Equal(t, 1, present)
	require.True(t, percent.Valid)
	assert.EqualValues(t, 15, percent.Int64)
	assert.Equal(t, 0, charging)
	assert.Equal(t, "MEDIUM", current)
	assert.Equal(t, "LOW", target)
	assert.Equal(t, 1, alerted)
	assert.NotEmpty(t, sessionID)
}

func TestRecordUnknownPercentStoresNull(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "telemetry.db")

	collector, err := telemetry.NewService(telemetry.Config{DBPath: dbPath, Enabled: true})
	require.NoError(t, err)

	snapshot := &telemetry.Snapshot{
		Timestamp:  time.Unix(1700000100, 0),
		Battery:    telemetry.BatteryMetrics{Present: true},
		Brightness: telemetry.BrightnessMetrics{Current: "NORMAL", Target: "MEDIUM"},
	}
	require.NoError(t, collector.Record(context.Background(), snapshot))
	require.NoError(t, collector.Close())

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var percent sql.NullInt64
	require.NoError(t, db.QueryRow(`SELECT battery_percent FROM power_ticks`).Scan(&percent))
	assert.False(t, percent.Valid, "Expected NULL battery_percent")
}

func TestRecordNilSnapshot(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "telemetry.db")

	collector, err := telemetry.NewService(telemetry.Config{DBPath: dbPath, Enabled: true})
	require.NoError(t, err)
	defer collector.Close()

	err = collector.Record(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, telemetry.ErrInvalidSnapshot), "Expected telemetry_invalid_snapshot, got %v", err)
}

func TestSchemaSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "telemetry.db")

	for i := 0; i < 2; i++ {
		collector, err := telemetry.NewService(telemetry.Config{DBPath: dbPath, Enabled: true})
		require.NoError(t, err)

		snapshot := &telemetry.Snapshot{
			Timestamp:  time.Unix(int64(1700000000+i), 0),
			Battery:    telemetry.BatteryMetrics{Present: true, Percent: 50, PercentKnown: true},
			Brightness: telemetry.BrightnessMetrics{Current: "NORMAL", Target: "MEDIUM"},
		}
		require.NoError(t, collector.Record(context.Background(), snapshot))
		require.NoError(t, collector.Close())
	}

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM power_ticks`).Scan(&count))
	assert.Equal(t, 2, count, "Expected one row per run")
}
