package config

import (
	"os"
	"time"

	"codeberg.org/mutker/powersaverd/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultLogLevel is used when no level is configured
	DefaultLogLevel = "info"

	defaultInterval       = 5
	defaultAlertThreshold = 20
	defaultDimThreshold   = 30
	defaultCooldown       = 60
	defaultTelemetryDB    = "/var/lib/powersaverd/telemetry.db"

	appName          = "powersaverd"
	configName       = "powersaverd"
	configType       = "toml"
	configDir        = "/etc"
	defaultEnvPrefix = "POWERSAVERD"
)

type Config struct {
	Interval       int    `mapstructure:"interval"`
	AlertThreshold int    `mapstructure:"alert_threshold"`
	DimThreshold   int    `mapstructure:"dim_threshold"`
	Cooldown       int    `mapstructure:"cooldown"`
	Monitor        bool   `mapstructure:"monitor"`
	LogLevel       string `mapstructure:"log_level"`
	Telemetry      bool   `mapstructure:"telemetry"`
	TelemetryDB    string `mapstructure:"database"`
}

// Load reads configuration from defaults, an optional TOML file and
// command line flags, in ascending order of precedence.
func Load(opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := options{envPrefix: defaultEnvPrefix}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Int("interval", defaultInterval, "Seconds between power state polls")
	fs.Int("alert-threshold", defaultAlertThreshold, "Battery percent at or below which the alert sounds")
	fs.Int("dim-threshold", defaultDimThreshold, "Battery percent at or below which brightness drops to LOW")
	fs.Int("cooldown", defaultCooldown, "Minimum seconds between alerts")
	fs.Bool("monitor", false, "Only monitor power state, do not adjust brightness or beep")
	fs.String("log-level", DefaultLogLevel, "Log level (debug, info, warning, error)")
	fs.Bool("telemetry", false, "Enable telemetry collection")
	fs.String("database", defaultTelemetryDB, "Path to the telemetry database")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	for flagName, key := range map[string]string{
		"interval":        "interval",
		"alert-threshold": "alert_threshold",
		"dim-threshold":   "dim_threshold",
		"cooldown":        "cooldown",
		"monitor":         "monitor",
		"log-level":       "log_level",
		"telemetry":       "telemetry",
		"database":        "database",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flagName)); err != nil {
			return nil, errFactory.Wrap(errors.ErrBindFlags, err)
		}
	}

	if err := readConfigFile(v, &o); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrReadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("interval", defaultInterval)
	v.SetDefault("alert_threshold", defaultAlertThreshold)
	v.SetDefault("dim_threshold", defaultDimThreshold)
	v.SetDefault("cooldown", defaultCooldown)
	v.SetDefault("monitor", false)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("telemetry", false)
	v.SetDefault("database", defaultTelemetryDB)
}

func readConfigFile(v *viper.Viper, o *options) error {
	errFactory := errors.New()

	switch {
	case o.configPath != "":
		v.SetConfigFile(o.configPath)
	case os.Getenv(o.envPrefix+"_CONFIG") != "":
		v.SetConfigFile(os.Getenv(o.envPrefix + "_CONFIG"))
	default:
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(configDir)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return errFactory.Wrap(errors.ErrReadConfig, err)
	}

	return nil
}

// Validate checks all configured values against their allowed ranges
func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.Interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	}
	if c.AlertThreshold < 0 || c.AlertThreshold > 100 {
		return errFactory.WithData(errors.ErrInvalidThreshold, c.AlertThreshold)
	}
	if c.DimThreshold < 0 || c.DimThreshold > 100 {
		return errFactory.WithData(errors.ErrInvalidThreshold, c.DimThreshold)
	}
	if c.Cooldown < 0 {
		return errFactory.WithData(errors.ErrInvalidCooldown, c.Cooldown)
	}
	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	return nil
}

// PollInterval returns the poll interval as a duration
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Interval) * time.Second
}

// CooldownInterval returns the alert cooldown as a duration
func (c *Config) CooldownInterval() time.Duration {
	return time.Duration(c.Cooldown) * time.Second
}
