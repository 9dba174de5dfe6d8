package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"codeberg.org/mutker/powersaverd/internal/backlight"
	"codeberg.org/mutker/powersaverd/internal/beep"
	"codeberg.org/mutker/powersaverd/internal/config"
	"codeberg.org/mutker/powersaverd/internal/journal"
	"codeberg.org/mutker/powersaverd/internal/logger"
	"codeberg.org/mutker/powersaverd/internal/monitor"
	"codeberg.org/mutker/powersaverd/internal/pid"
	"codeberg.org/mutker/powersaverd/internal/power"
	"codeberg.org/mutker/powersaverd/internal/telemetry"
)

var cfg *config.Config

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.LogLevel, logger.IsService())
	logger.Debug().Msg("Config loaded")
}

func main() {
	if err := pid.Write(); err != nil {
		logger.Fatal().Err(err).Msg("failed to write pidfile")
	}
	defer pid.Remove()

	telemetryCfg := telemetry.DefaultConfig()
	telemetryCfg.DBPath = cfg.TelemetryDB
	telemetryCfg.Enabled = cfg.Telemetry

	recorder, err := telemetry.NewService(telemetryCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer recorder.Close()

	mon := monitor.New(
		cfg,
		power.NewSource(),
		backlight.NewActuator(),
		beep.NewBeeper(),
		journal.New(journal.DefaultPath),
		recorder,
	)

	logger.Info().Msgf("Activity log: %s", journal.DefaultPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	if err := mon.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("error in main loop")
	}
	cleanup(mon)
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

func cleanup(mon *monitor.Monitor) {
	mon.Shutdown()
	logger.Info().Msg("Exiting...")
}
