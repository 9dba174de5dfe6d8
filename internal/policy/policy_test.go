package policy_test

import (
	"testing"
	"time"

	"codeberg.org/mutker/powersaverd/internal/policy"
	"codeberg.org/mutker/powersaverd/internal/power"
	"github.com/stretchr/testify/assert"
)

var testConfig = policy.Config{
	AlertThreshold: 20,
	DimThreshold:   30,
	Cooldown:       time.Minute,
}

func onBattery(percent int) power.Snapshot {
	return power.Snapshot{Present: true, Percent: percent, PercentKnown: true}
}

func charging(percent int) power.Snapshot {
	return power.Snapshot{Present: true, Charging: true, Percent: percent, PercentKnown: true}
}

func TestEvaluateTargets(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		snap       power.Snapshot
		wantTarget policy.Level
		wantAlert  bool
	}{
		{
			name:       "half charge on battery dims to medium",
			snap:       onBattery(50),
			wantTarget: policy.LevelMedium,
		},
		{
			name:       "exactly at dim threshold drops to low",
			snap:       onBattery(30),
			wantTarget: policy.LevelLow,
		},
		{
			name:       "just above dim threshold stays medium",
			snap:       onBattery(31),
			wantTarget: policy.LevelMedium,
		},
		{
			name:       "critical charge drops to low and alerts",
			snap:       onBattery(15),
			wantTarget: policy.LevelLow,
			wantAlert:  true,
		},
		{
			name:       "exactly at alert threshold alerts",
			snap:       onBattery(20),
			wantTarget: policy.LevelLow,
			wantAlert:  true,
		},
		{
			name:       "critical charge while charging restores normal",
			snap:       charging(15),
			wantTarget: policy.LevelNormal,
		},
		{
			name:       "absent battery restores normal",
			snap:       power.Snapshot{},
			wantTarget: policy.LevelNormal,
		},
		{
			name:       "unknown percent on battery dims to medium without alert",
			snap:       power.Snapshot{Present: true},
			wantTarget: policy.LevelMedium,
		},
		{
			name:       "full charge on battery still dims to medium",
			snap:       onBattery(100),
			wantTarget: policy.LevelMedium,
		},
		{
			name:       "empty battery drops to low and alerts",
			snap:       onBattery(0),
			wantTarget: policy.LevelLow,
			wantAlert:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := policy.Evaluate(tt.snap, policy.State{}, testConfig, now)

			assert.Equal(t, tt.wantTarget, decision.Target, "target level")
			assert.Equal(t, tt.wantAlert, decision.ShouldAlert, "alert decision")
		})
	}
}

func TestAlertCooldown(t *testing.T) {
	now := time.Now()
	critical := onBattery(15)

	tests := []struct {
		name      string
		state     policy.State
		snap      power.Snapshot
		wantAlert bool
	}{
		{
			name:      "never alerted fires immediately",
			state:     policy.State{},
			snap:      critical,
			wantAlert: true,
		},
		{
			name:      "recent alert is suppressed",
			state:     policy.State{LastAlertAt: now.Add(-10 * time.Second)},
			snap:      critical,
			wantAlert: false,
		},
		{
			name:      "elapsed cooldown fires again",
			state:     policy.State{LastAlertAt: now.Add(-time.Minute)},
			snap:      critical,
			wantAlert: true,
		},
		{
			name:      "almost elapsed cooldown stays quiet",
			state:     policy.State{LastAlertAt: now.Add(-time.Minute + time.Millisecond)},
			snap:      critical,
			wantAlert: false,
		},
		{
			name:      "charging suppresses the alert even after cooldown",
			state:     policy.State{LastAlertAt: now.Add(-time.Hour)},
			snap:      charging(15),
			wantAlert: false,
		},
		{
			name:      "unknown percent never alerts",
			state:     policy.State{},
			snap:      power.Snapshot{Present: true},
			wantAlert: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := policy.Evaluate(tt.snap, tt.state, testConfig, now)

			assert.Equal(t, tt.wantAlert, decision.ShouldAlert)
		})
	}
}

func TestLevelFactor(t *testing.T) {
	assert.InEpsilon(t, 1.00, policy.LevelNormal.Factor(), 1e-9)
	assert.InEpsilon(t, 0.75, policy.LevelMedium.Factor(), 1e-9)
	assert.InEpsilon(t, 0.50, policy.LevelLow.Factor(), 1e-9)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "NORMAL", policy.LevelNormal.String())
	assert.Equal(t, "MEDIUM", policy.LevelMedium.String())
	assert.Equal(t, "LOW", policy.LevelLow.String())
}
