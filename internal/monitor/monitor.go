// Package monitor drives the poll/decide/act cycle: read the power supply,
// evaluate the brightness policy, and carry out whatever the decision asks
// for. Collaborator failures are logged and absorbed; only context
// cancellation stops the loop.
package monitor

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/mutker/powersaverd/internal/backlight"
	"codeberg.org/mutker/powersaverd/internal/beep"
	"codeberg.org/mutker/powersaverd/internal/config"
	"codeberg.org/mutker/powersaverd/internal/errors"
	"codeberg.org/mutker/powersaverd/internal/journal"
	"codeberg.org/mutker/powersaverd/internal/logger"
	"codeberg.org/mutker/powersaverd/internal/policy"
	"codeberg.org/mutker/powersaverd/internal/power"
	"codeberg.org/mutker/powersaverd/internal/telemetry"
)

const (
	alertFrequencyHz = 1000
	alertDurationMs  = 400

	minBrightnessFactor = 0.05
	maxBrightnessFactor = 1.0
)

var errFactory = errors.New()

// Monitor owns the loop state. It is not safe for concurrent use: Run and
// Shutdown are expected to be called in sequence from the same goroutine.
type Monitor struct {
	interval    time.Duration
	policyCfg   policy.Config
	monitorOnly bool

	source   power.Source
	display  backlight.Actuator
	beeper   beep.Beeper
	journal  journal.Appender
	recorder telemetry.Collector

	state policy.State
	clock func() time.Time
}

func New(
	cfg *config.Config,
	source power.Source,
	display backlight.Actuator,
	beeper beep.Beeper,
	jrnl journal.Appender,
	recorder telemetry.Collector,
) *Monitor {
	return &Monitor{
		interval: cfg.PollInterval(),
		policyCfg: policy.Config{
			AlertThreshold: cfg.AlertThreshold,
			DimThreshold:   cfg.DimThreshold,
			Cooldown:       cfg.CooldownInterval(),
		},
		monitorOnly: cfg.Monitor,
		source:      source,
		display:     display,
		beeper:      beeper,
		journal:     jrnl,
		recorder:    recorder,
		state:       policy.State{Level: policy.LevelNormal},
		clock:       time.Now,
	}
}

// Run executes the loop until ctx is cancelled. The first tick fires
// immediately so the display reacts on startup rather than one interval in.
func (m *Monitor) Run(ctx context.Context) error {
	if m.interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, m.interval)
	}

	if m.monitorOnly {
		logger.Info().Msg("Monitor mode activated. Logging power status...")
	} else if err := m.applyLevel(policy.LevelNormal); err != nil {
		// Start from full brightness so state matches the panel. Not fatal:
		// the first differing decision retries.
		logger.Debug().Err(err).Msg("Failed to apply initial brightness")
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.tick(ctx)
		}
	}
}

// Shutdown restores full brightness once the loop has exited. In monitor-only
// mode nothing was touched, so nothing is restored.
func (m *Monitor) Shutdown() {
	if m.monitorOnly {
		return
	}

	if err := m.applyLevel(policy.LevelNormal); err != nil {
		logger.ErrorWithCode(errFactory.Wrap(errors.ErrRestoreBrightness, err)).Send()
	}
	m.state.Level = policy.LevelNormal
}

func (m *Monitor) tick(ctx context.Context) {
	now := m.clock()
	snap := m.source.Read()

	observation := snap.String()
	logger.Info().Msg(observation)
	m.journal.Status(observation)

	decision := policy.Evaluate(snap, m.state, m.policyCfg, now)

	if m.monitorOnly {
		m.record(ctx, now, snap, m.state.Level, decision.Target, false)
		return
	}

	if decision.ShouldAlert {
		m.beeper.Ring(alertFrequencyHz, alertDurationMs)
		m.state.LastAlertAt = now
		m.journal.Action("Low-battery beep")
	}

	previous := m.state.Level
	if decision.Target != previous {
		if err := m.applyLevel(decision.Target); err != nil {
			logger.Warn().Err(err).Msgf("Failed to set %s brightness", decision.Target)
			m.journal.Action("Brightness change FAILED (driver may block brightness control)")
		} else {
			m.journal.Action(fmt.Sprintf("Brightness %s (~%d%%)", decision.Target, brightnessPercent(decision.Target)))
		}
		// The decision is committed even when the panel refused it. Retrying
		// every tick would spam the journal without changing the outcome; the
		// next differing decision retries naturally.
		m.state.Level = decision.Target
	}

	m.record(ctx, now, snap, previous, decision.Target, decision.ShouldAlert)
}

func (m *Monitor) record(
	ctx context.Context,
	now time.Time,
	snap power.Snapshot,
	current, target policy.Level,
	alerted bool,
) {
	err := m.recorder.Record(ctx, &telemetry.Snapshot{
		Timestamp: now,
		Battery: telemetry.BatteryMetrics{
			Present:      snap.Present,
			Percent:      snap.Percent,
			PercentKnown: snap.PercentKnown,
			Charging:     snap.Charging,
		},
		Brightness: telemetry.BrightnessMetrics{
			Current: current.String(),
			Target:  target.String(),
		},
		Alerted: alerted,
	})
	if err != nil {
		logger.Debug().Err(err).Msg("Failed to record telemetry")
	}
}

func (m *Monitor) applyLevel(level policy.Level) error {
	return m.display.Apply(clampFactor(level.Factor()))
}

func brightnessPercent(level policy.Level) int {
	return int(level.Factor() * 100)
}

func clampFactor(factor float64) float64 {
	if factor < minBrightnessFactor {
		return minBrightnessFactor
	}
	if factor > maxBrightnessFactor {
		return maxBrightnessFactor
	}

	return factor
}
