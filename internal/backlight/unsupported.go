//go:build !linux

package backlight

import "codeberg.org/mutker/powersaverd/internal/errors"

type unsupportedActuator struct{}

// NewActuator returns an actuator whose Apply always fails on platforms
// without a backlight driver. The monitor logs the failure and carries on.
func NewActuator() Actuator {
	return unsupportedActuator{}
}

func (unsupportedActuator) Apply(float64) error {
	return errors.New().New(ErrUnsupported)
}
