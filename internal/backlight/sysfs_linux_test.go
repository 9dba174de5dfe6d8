//go:build linux

package backlight

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/mutker/powersaverd/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDevice(t *testing.T, root, name string, maxBrightness, brightness string) string {
	t.Helper()

	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "max_brightness"), []byte(maxBrightness+"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brightness"), []byte(brightness+"\n"), 0o644))

	return dir
}

func readBrightness(t *testing.T, dir string) string {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join(dir, "brightness"))
	require.NoError(t, err)

	return string(raw)
}

func TestApplyWritesScaledBrightness(t *testing.T) {
	root := t.TempDir()
	device := writeDevice(t, root, "intel_backlight", "120000", "120000")

	actuator := &sysfsActuator{root: root}
	require.NoError(t, actuator.Apply(0.75))

	assert.Equal(t, "90000", readBrightness(t, device))
}

func TestApplyFullBrightness(t *testing.T) {
	root := t.TempDir()
	device := writeDevice(t, root, "amdgpu_bl0", "255", "100")

	actuator := &sysfsActuator{root: root}
	require.NoError(t, actuator.Apply(1.0))

	assert.Equal(t, "255", readBrightness(t, device))
}

func TestApplyNeverWritesZero(t *testing.T) {
	root := t.TempDir()
	device := writeDevice(t, root, "acpi_video0", "4", "4")

	actuator := &sysfsActuator{root: root}
	require.NoError(t, actuator.Apply(0.05))

	assert.Equal(t, "1", readBrightness(t, device))
}

func TestApplyNoDevice(t *testing.T) {
	actuator := &sysfsActuator{root: t.TempDir()}

	err := actuator.Apply(0.5)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, ErrNoDevice), "Expected backlight_no_device, got %v", err)
}

func TestApplyRejectsBadFactor(t *testing.T) {
	actuator := &sysfsActuator{root: t.TempDir()}

	for _, factor := range []float64{0, -0.5, 1.5} {
		err := actuator.Apply(factor)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, ErrInvalidFactor), "Expected backlight_invalid_factor for %v", factor)
	}
}

func TestApplyUnreadableMax(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "panel"), 0o755))

	actuator := &sysfsActuator{root: root}

	err := actuator.Apply(0.5)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, ErrReadFailed), "Expected backlight_read_failed, got %v", err)
}
