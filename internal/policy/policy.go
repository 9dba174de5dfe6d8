package policy

import (
	"time"

	"codeberg.org/mutker/powersaverd/internal/power"
)

// Level is a discrete brightness step. Levels are ordered by brightness
// factor, not by enum value: Normal is the brightest.
type Level int

const (
	LevelNormal Level = iota
	LevelMedium
	LevelLow
)

// Factor returns the brightness multiplier for the level.
func (l Level) Factor() float64 {
	switch l {
	case LevelLow:
		return 0.50
	case LevelMedium:
		return 0.75
	default:
		return 1.00
	}
}

// String implements the Stringer interface.
func (l Level) String() string {
	switch l {
	case LevelLow:
		return "LOW"
	case LevelMedium:
		return "MEDIUM"
	default:
		return "NORMAL"
	}
}

// Config carries the decision thresholds. Thresholds are inclusive: a
// reading exactly at a threshold triggers the behavior.
type Config struct {
	AlertThreshold int
	DimThreshold   int
	Cooldown       time.Duration
}

// State is the loop-owned controller state. The zero value of LastAlertAt
// means no alert has ever fired.
type State struct {
	Level       Level
	LastAlertAt time.Time
}

// Decision is the outcome of evaluating one power snapshot.
type Decision struct {
	Target      Level
	ShouldAlert bool
}

// Evaluate maps one power snapshot onto a brightness target and an alert
// decision. It is free of side effects: sensor access, actuation and state
// transitions all belong to the caller. An absent or charging battery
// always yields Normal; on battery, a known percent at or below the dim
// threshold yields Low and anything else, including an unknown percent,
// yields Medium. Alerts require a known percent at or below the alert
// threshold and an elapsed cooldown.
func Evaluate(snap power.Snapshot, state State, cfg Config, now time.Time) Decision {
	if !snap.Present || snap.Charging {
		return Decision{Target: LevelNormal}
	}

	decision := Decision{Target: LevelMedium}
	if snap.PercentKnown && snap.Percent <= cfg.DimThreshold {
		decision.Target = LevelLow
	}

	if snap.PercentKnown && snap.Percent <= cfg.AlertThreshold && now.Sub(state.LastAlertAt) >= cfg.Cooldown {
		decision.ShouldAlert = true
	}

	return decision
}
