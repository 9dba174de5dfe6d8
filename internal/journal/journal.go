package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/mutker/powersaverd/internal/logger"
)

// DefaultPath is where the activity log lands, relative to the working
// directory of the daemon.
const DefaultPath = "logs/power_saver.log"

const (
	timeLayout  = "2006-01-02 15:04:05"
	logDirPerm  = 0o755
	logFilePerm = 0o644
)

// Appender records daemon activity as human-readable lines. Appends are
// best-effort: a line that cannot be written is dropped, never surfaced to
// the caller.
type Appender interface {
	// Status appends a timestamped observation line.
	Status(msg string)
	// Action appends an indented action line below the last observation.
	Action(msg string)
}

// FileJournal appends to a plain text file, opening and closing it per
// line so a crash never holds the log hostage.
type FileJournal struct {
	path  string
	clock func() time.Time
}

func New(path string) *FileJournal {
	return &FileJournal{path: path, clock: time.Now}
}

func (j *FileJournal) Status(msg string) {
	j.append(fmt.Sprintf("[%s] %s", j.clock().Format(timeLayout), msg))
}

func (j *FileJournal) Action(msg string) {
	j.append("  Action: " + msg)
}

func (j *FileJournal) append(line string) {
	if dir := filepath.Dir(j.path); dir != "." {
		if err := os.MkdirAll(dir, logDirPerm); err != nil {
			logger.Debug().Err(err).Msg("Failed to create journal directory")
			return
		}
	}

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePerm)
	if err != nil {
		logger.Debug().Err(err).Msg("Failed to open journal")
		return
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		logger.Debug().Err(err).Msg("Failed to append to journal")
	}
}
