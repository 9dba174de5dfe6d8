package backlight

import "codeberg.org/mutker/powersaverd/internal/errors"

const (
	// Device Errors
	ErrNoDevice   = errors.ErrorCode("backlight_no_device")
	ErrReadFailed = errors.ErrorCode("backlight_read_failed")

	// Actuation Errors
	ErrApplyFailed   = errors.ErrorCode("backlight_apply_failed")
	ErrInvalidFactor = errors.ErrorCode("backlight_invalid_factor")
	ErrUnsupported   = errors.ErrorCode("backlight_unsupported")
)
