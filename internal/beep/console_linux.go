//go:build linux

package beep

import (
	"os"
	"time"

	"codeberg.org/mutker/powersaverd/internal/logger"
	"golang.org/x/sys/unix"
)

// KIOCSOUND starts a tone on the console speaker; the argument is the PIT
// clock divided by the desired frequency, 0 stops the tone.
const (
	kiocsound    = 0x4B2F
	pitClockRate = 1193180
)

var consoleDevices = []string{"/dev/tty0", "/dev/console"}

type consoleBeeper struct {
	device string
}

// NewBeeper returns the console speaker when one is writable, otherwise a
// terminal bell.
func NewBeeper() Beeper {
	for _, device := range consoleDevices {
		fd, err := unix.Open(device, unix.O_WRONLY, 0)
		if err != nil {
			continue
		}
		_ = unix.Close(fd)

		return &consoleBeeper{device: device}
	}

	logger.Debug().Msg("No writable console device, falling back to terminal bell")

	return NewTerminalBeeper(os.Stdout)
}

func (b *consoleBeeper) Ring(freqHz, durationMs int) {
	if freqHz <= 0 || durationMs <= 0 {
		return
	}

	fd, err := unix.Open(b.device, unix.O_WRONLY, 0)
	if err != nil {
		logger.Debug().Err(err).Msg("Failed to open console for beep")
		return
	}
	defer unix.Close(fd)

	if err := unix.IoctlSetInt(fd, kiocsound, toneDivisor(freqHz)); err != nil {
		logger.Debug().Err(err).Msg("Failed to start console tone")
		return
	}

	time.Sleep(time.Duration(durationMs) * time.Millisecond)

	if err := unix.IoctlSetInt(fd, kiocsound, 0); err != nil {
		logger.Debug().Err(err).Msg("Failed to stop console tone")
	}
}

func toneDivisor(freqHz int) int {
	return pitClockRate / freqHz
}
