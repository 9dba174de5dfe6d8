//go:build darwin

package power

import (
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

var percentPattern = regexp.MustCompile(`(\d+)%`)

type pmsetSource struct{}

// NewSource returns a power source backed by pmset battery reporting.
func NewSource() Source {
	return pmsetSource{}
}

func (pmsetSource) Read() Snapshot {
	out, err := exec.Command("pmset", "-g", "batt").Output()
	if err != nil {
		return Snapshot{}
	}

	return parsePmset(string(out))
}

func parsePmset(out string) Snapshot {
	if !strings.Contains(out, "InternalBattery") {
		return Snapshot{}
	}

	snap := Snapshot{
		Present:  true,
		Charging: strings.Contains(out, "'AC Power'"),
	}

	if m := percentPattern.FindStringSubmatch(out); len(m) == 2 {
		if pct, err := strconv.Atoi(m[1]); err == nil && pct >= 0 && pct <= 100 {
			snap.Percent = pct
			snap.PercentKnown = true
		}
	}

	return snap
}
