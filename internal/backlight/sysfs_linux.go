//go:build linux

package backlight

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"codeberg.org/mutker/powersaverd/internal/errors"
	"codeberg.org/mutker/powersaverd/internal/logger"
)

const sysfsBacklight = "/sys/class/backlight"

type sysfsActuator struct {
	root string
}

// NewActuator returns an actuator driving the first kernel backlight device.
func NewActuator() Actuator {
	return &sysfsActuator{root: sysfsBacklight}
}

func (a *sysfsActuator) Apply(factor float64) error {
	errFactory := errors.New()

	if factor <= 0 || factor > 1 {
		return errFactory.WithData(ErrInvalidFactor, factor)
	}

	device, err := a.findDevice()
	if err != nil {
		return err
	}

	maxBrightness, err := a.readMax(device)
	if err != nil {
		return err
	}

	// The raw value never drops to 0: a dimmed panel must stay readable.
	value := int(math.Round(float64(maxBrightness) * factor))
	if value < 1 {
		value = 1
	}
	if value > maxBrightness {
		value = maxBrightness
	}

	path := filepath.Join(device, "brightness")
	if err := os.WriteFile(path, []byte(strconv.Itoa(value)), 0o644); err != nil {
		return errFactory.Wrap(ErrApplyFailed, err)
	}

	logger.Debug().
		Int("brightness", value).
		Int("max", maxBrightness).
		Msgf("Set backlight: %.0f%%", factor*100)

	return nil
}

func (a *sysfsActuator) findDevice() (string, error) {
	matches, err := filepath.Glob(filepath.Join(a.root, "*"))
	if err != nil || len(matches) == 0 {
		return "", errors.New().New(ErrNoDevice)
	}

	return matches[0], nil
}

func (a *sysfsActuator) readMax(device string) (int, error) {
	errFactory := errors.New()

	raw, err := os.ReadFile(filepath.Join(device, "max_brightness"))
	if err != nil {
		return 0, errFactory.Wrap(ErrReadFailed, err)
	}

	maxBrightness, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil || maxBrightness <= 0 {
		return 0, errFactory.WithData(ErrReadFailed, strings.TrimSpace(string(raw)))
	}

	return maxBrightness, nil
}
