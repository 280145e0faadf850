package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/sapteams/battleapi/internal/battle"
	"github.com/sapteams/battleapi/internal/config"
	"github.com/sapteams/battleapi/internal/logging"
	"github.com/sapteams/battleapi/internal/records"
	"github.com/sapteams/battleapi/internal/server"
	"github.com/sapteams/battleapi/internal/stats"
)

const serviceName = "battleapi"

func main() {
	args := parseArgs()

	if err := config.Load(args.ConfigDir); err != nil {
		// Config problems are fatal before logging exists.
		panic(err)
	}
	args.apply()

	var logFile *os.File
	logsDir := viper.GetString("logsDir")
	if logsDir != "" {
		if err := os.MkdirAll(logsDir, 0o755); err == nil {
			path := logging.LogFilePath(logsDir, serviceName, time.Now())
			logFile, _ = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		}
	}

	gelfAddr := ""
	if viper.GetBool("graylog.enabled") {
		gelfAddr = viper.GetString("graylog.address")
	}
	log := logging.Setup(logging.Options{
		Level:       viper.GetString("logLevel"),
		LogFile:     logFile,
		GelfAddress: gelfAddr,
	})
	if logFile != nil {
		defer logFile.Close()
	}

	log.Info().Str("logLevel", log.GetLevel().String()).Msg("Starting up")

	store := records.NewStore(log.With().Str("component", "records").Logger())
	if err := store.Connect(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to record database")
	}
	if err := store.Setup(); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up record database")
	}

	snap, err := store.Snapshot()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load record snapshot")
	}
	log.Info().Int("pets", snap.Pets()).Int("foods", snap.Foods()).Msg("Record snapshot loaded")

	metrics, err := battle.NewMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to register battle metrics")
	}

	statsManager := stats.NewManager(log.With().Str("component", "stats").Logger())
	if viper.GetBool("influx.enabled") {
		if err := statsManager.Connect(); err != nil {
			log.Warn().Err(err).Msg("Battle stats sink unavailable")
		}
		defer statsManager.Close()
	}

	srv := server.New(server.Dependencies{
		Snapshot:   snap,
		Store:      store,
		Logger:     log.With().Str("component", "server").Logger(),
		TurnLimit:  viper.GetInt("battle.turnLimit"),
		Metrics:    metrics,
		Stats:      statsManager,
		EnableCORS: viper.GetBool("server.cors"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx, viper.GetString("server.addr"), viper.GetInt("server.port")); err != nil {
		log.Fatal().Err(err).Msg("Server exited")
	}
	log.Info().Msg("Shut down cleanly")
}
