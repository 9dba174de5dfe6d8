package power

import (
	"fmt"
	"strconv"
)

// Snapshot is a point-in-time reading of host power state. Percent is only
// meaningful when PercentKnown is set; Charging means the machine is on
// mains power.
type Snapshot struct {
	Present      bool
	Charging     bool
	Percent      int
	PercentKnown bool
}

// Source reads the host power state. Implementations never block
// indefinitely and never fail: a reading that cannot be taken degrades to
// an absent battery.
type Source interface {
	Read() Snapshot
}

// String renders the snapshot the way it is journaled, e.g.
// "Battery: 57% (Charging)" or "Battery: NONE".
func (s Snapshot) String() string {
	if !s.Present {
		return "Battery: NONE"
	}

	percent := "?%"
	if s.PercentKnown {
		percent = strconv.Itoa(s.Percent) + "%"
	}

	state := "(On Battery)"
	if s.Charging {
		state = "(Charging)"
	}

	return fmt.Sprintf("Battery: %s %s", percent, state)
}
