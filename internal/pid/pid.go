// Package pid guards against a second daemon instance fighting over the
// display, using a pidfile in the system temp directory.
package pid

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"codeberg.org/mutker/powersaverd/internal/errors"
)

const pidFile = "powersaverd.pid"

// Write records the current process ID. It refuses to start when the file
// names a process that is still alive; a stale or unreadable file is
// overwritten.
func Write() error {
	return writeAt(filepath.Join(os.TempDir(), pidFile))
}

// Remove deletes the pidfile. A missing file is not an error.
func Remove() error {
	return removeAt(filepath.Join(os.TempDir(), pidFile))
}

func writeAt(path string) error {
	errFactory := errors.New()

	if owner, alive := livePID(path); alive {
		return errFactory.WithData(errors.ErrAlreadyRunning, owner)
	}

	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o600); err != nil {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}

// livePID returns the process ID recorded at path when that process still
// exists.
func livePID(path string) (int, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}

	owner, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, false
	}

	process, err := os.FindProcess(owner)
	if err != nil {
		return 0, false
	}

	return owner, process.Signal(syscall.Signal(0)) == nil
}

func removeAt(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.New().Wrap(errors.ErrInternal, err)
	}

	return nil
}
