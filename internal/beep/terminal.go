package beep

import (
	"io"

	"codeberg.org/mutker/powersaverd/internal/logger"
)

type terminalBeeper struct {
	w io.Writer
}

// NewTerminalBeeper returns a Beeper that rings the ASCII bell on w. The
// frequency and duration arguments are accepted for interface
// compatibility; a terminal bell has neither.
func NewTerminalBeeper(w io.Writer) Beeper {
	return &terminalBeeper{w: w}
}

func (b *terminalBeeper) Ring(_, _ int) {
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		logger.Debug().Err(err).Msg("Failed to ring terminal bell")
	}
}
