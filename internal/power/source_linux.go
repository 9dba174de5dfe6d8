//go:build linux

package power

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const sysfsPowerSupply = "/sys/class/power_supply"

var (
	batteryGlobs = []string{"BAT*"}
	mainsGlobs   = []string{"AC*", "ACAD*", "ADP*"}
)

type sysfsSource struct {
	root string
}

// NewSource returns a power source backed by the kernel power supply class.
func NewSource() Source {
	return &sysfsSource{root: sysfsPowerSupply}
}

func (s *sysfsSource) Read() Snapshot {
	battery, ok := s.findSupply(batteryGlobs)
	if !ok {
		return Snapshot{}
	}
	if v, ok := s.readAttr(battery, "present"); ok && v == "0" {
		return Snapshot{}
	}

	snap := Snapshot{Present: true}

	if v, ok := s.readAttr(battery, "capacity"); ok {
		if pct, err := strconv.Atoi(v); err == nil && pct >= 0 && pct <= 100 {
			snap.Percent = pct
			snap.PercentKnown = true
		}
	}

	snap.Charging = s.mainsOnline() || s.batteryCharging(battery)

	return snap
}

// findSupply returns the first power supply entry matching any of the
// given name patterns.
func (s *sysfsSource) findSupply(globs []string) (string, bool) {
	for _, pattern := range globs {
		matches, err := filepath.Glob(filepath.Join(s.root, pattern))
		if err != nil || len(matches) == 0 {
			continue
		}

		return matches[0], true
	}

	return "", false
}

func (s *sysfsSource) readAttr(dir, name string) (string, bool) {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", false
	}

	return strings.TrimSpace(string(raw)), true
}

func (s *sysfsSource) mainsOnline() bool {
	mains, ok := s.findSupply(mainsGlobs)
	if !ok {
		return false
	}

	v, ok := s.readAttr(mains, "online")

	return ok && v == "1"
}

// batteryCharging falls back to the battery status attribute on machines
// whose mains adapter is not exposed as a separate supply.
func (s *sysfsSource) batteryCharging(dir string) bool {
	v, ok := s.readAttr(dir, "status")
	if !ok {
		return false
	}

	switch v {
	case "Charging", "Full":
		return true
	default:
		return false
	}
}
