package telemetry

import "codeberg.org/mutker/powersaverd/internal/errors"

const (
	defaultDirPerm = 0o755
	defaultDBPath  = "/var/lib/powersaverd/telemetry.db"
)

// Config selects whether ticks are recorded at all and where. Disabled by
// default so the plain-text journal stays the only artifact of a default
// run.
type Config struct {
	DBPath  string
	Enabled bool
}

func DefaultConfig() Config {
	return Config{DBPath: defaultDBPath}
}

func (c Config) Validate() error {
	// The path only matters once recording is switched on.
	if c.Enabled && c.DBPath == "" {
		return errors.New().New(ErrInvalidDBPath)
	}

	return nil
}
