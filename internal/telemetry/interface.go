package telemetry

import (
	"context"
	"time"
)

// Collector defines the core domain interface
type Collector interface {
	Record(ctx context.Context, snapshot *Snapshot) error
	Close() error
}

// Repository defines the interface for telemetry data storage
type Repository interface {
	Store(ctx context.Context, snapshot *Snapshot) error
	Close() error
}

// Snapshot represents one monitor tick
type Snapshot struct {
	Timestamp  time.Time
	Battery    BatteryMetrics
	Brightness BrightnessMetrics
	Alerted    bool
}

// Domain value objects
type BatteryMetrics struct {
	Present      bool
	Percent      int
	PercentKnown bool
	Charging     bool
}

type BrightnessMetrics struct {
	Current string
	Target  string
}
