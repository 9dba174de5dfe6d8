//go:build !linux

package beep

import "os"

// NewBeeper returns a terminal bell on platforms without a console speaker.
func NewBeeper() Beeper {
	return NewTerminalBeeper(os.Stdout)
}
