package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/aleister1102/errnotify/internal/config"
	"github.com/aleister1102/errnotify/internal/counterstore"
	"github.com/aleister1102/errnotify/internal/logger"
	"github.com/aleister1102/errnotify/internal/models"
	"github.com/aleister1102/errnotify/internal/notifier"
)

func main() {
	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	exceptionType := flag.String("type", "ManualTest", "Exception type identifier for the test notification")
	message := flag.String("message", "errnotify test notification", "Message for the test notification")
	statusCode := flag.Int("status", 0, "Optional HTTP status code to attach to the test notification")
	flag.Parse()

	if *configFile == "" && *configFileAlias != "" {
		*configFile = *configFileAlias
	}

	gCfg, err := config.LoadGlobalConfig(*configFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load config using path '%s': %v", *configFile, err)
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		log.Fatalf("[FATAL] Configuration validation failed: %v", err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	var store counterstore.Store
	if gCfg.StorageConfig.CounterDBPath != "" {
		sqliteStore, err := counterstore.NewSQLiteStore(gCfg.StorageConfig.CounterDBPath, zLogger)
		if err != nil {
			zLogger.Fatal().Err(err).Msg("Failed to open counter store")
		}
		store = sqliteStore
	} else {
		zLogger.Warn().Msg("No counter database path configured, rate limit window is process-local")
		store = counterstore.NewMemoryStore()
	}
	defer store.Close()

	dispatcher, err := notifier.NewDispatcher(gCfg.NotificationConfig, store, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize dispatcher")
	}

	eventBuilder := models.NewErrorEventBuilder(*exceptionType).WithMessage(*message)
	if *statusCode != 0 {
		eventBuilder = eventBuilder.WithStatusCode(*statusCode)
	}
	event := eventBuilder.Build()

	if dispatcher.Send(context.Background(), event, nil) {
		zLogger.Info().Str("exception_type", event.Type).Msg("Test notification delivered")
		return
	}

	zLogger.Error().Str("exception_type", event.Type).Msg("Test notification was not delivered (skipped, rate limited or failed)")
	os.Exit(1)
}
