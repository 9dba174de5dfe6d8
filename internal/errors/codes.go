package errors

// Daemon-wide error codes. Collaborator packages define their own codes
// with a package prefix (backlight_*, telemetry_*).
const (
	ErrInternal ErrorCode = "internal_error"

	// Configuration
	ErrInvalidConfig    ErrorCode = "invalid_configuration"
	ErrBindFlags        ErrorCode = "bind_flags_failed"
	ErrReadConfig       ErrorCode = "read_config_failed"
	ErrInvalidInterval  ErrorCode = "invalid_interval"
	ErrInvalidThreshold ErrorCode = "invalid_threshold"
	ErrInvalidCooldown  ErrorCode = "invalid_cooldown"
	ErrInvalidLogLevel  ErrorCode = "invalid_log_level"

	// Lifecycle
	ErrAlreadyRunning ErrorCode = "already_running"

	// Actuation
	ErrSetBrightness     ErrorCode = "set_brightness_failed"
	ErrRestoreBrightness ErrorCode = "restore_brightness_failed"
)

var errorMessages = map[ErrorCode]string{
	ErrInternal:          "Internal error occurred",
	ErrInvalidConfig:     "Invalid configuration",
	ErrBindFlags:         "Failed to bind flags",
	ErrReadConfig:        "Failed to read config file",
	ErrInvalidInterval:   "Invalid interval value",
	ErrInvalidThreshold:  "Invalid threshold value",
	ErrInvalidCooldown:   "Invalid cooldown value",
	ErrInvalidLogLevel:   "Invalid log level",
	ErrAlreadyRunning:    "Another instance is already running",
	ErrSetBrightness:     "Failed to set brightness",
	ErrRestoreBrightness: "Failed to restore brightness",
}

// GetErrorMessage returns the message for a code, or the code itself when
// no message is mapped.
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
