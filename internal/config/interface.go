package config

import "codeberg.org/mutker/powersaverd/internal/errors"

// LogLevel names a console logging verbosity accepted by the daemon.
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

// IsValid reports whether the level is one the logger understands.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		return true
	}

	return false
}

func (l LogLevel) String() string {
	return string(l)
}

// Option adjusts how Load resolves configuration.
type Option func(*options) error

type options struct {
	configPath string
	envPrefix  string
}

// WithConfigFile makes Load read the given file instead of searching the
// default locations.
func WithConfigFile(path string) Option {
	return func(o *options) error {
		o.configPath = path
		return nil
	}
}

// WithEnvPrefix overrides the POWERSAVERD prefix on environment variables.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) error {
		if prefix == "" {
			return errors.New().WithMessage(errors.ErrInvalidConfig, "empty environment prefix")
		}
		o.envPrefix = prefix

		return nil
	}
}
