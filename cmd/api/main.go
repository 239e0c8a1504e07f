package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/based-profile/backend/internal/config"
	"github.com/based-profile/backend/internal/db"
	"github.com/based-profile/backend/internal/directory"
	"github.com/based-profile/backend/internal/events"
	apphttp "github.com/based-profile/backend/internal/http"
	"github.com/based-profile/backend/internal/http/handlers"
	"github.com/based-profile/backend/internal/services"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Events are optional; without redis the pipeline publishes nowhere.
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RedisURL != "" {
		rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
		if err != nil {
			log.Warn("redis unavailable, profile events disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			publisher = events.NewRedisPublisher(rdb, log)
		}
	}

	// Services
	dirClient := directory.NewClient(cfg, log)
	profileService := services.NewProfileService(dirClient, publisher, cfg, log)

	// Handlers
	lookupHandler := handlers.NewLookupHandler(dirClient, log)
	profileHandler := handlers.NewProfileHandler(profileService, log)
	metaHandler := handlers.NewMetaHandler(cfg)
	profileStream := handlers.NewProfileStream(profileService, log)

	app := apphttp.NewApp()
	apphttp.SetupRouter(app, cfg, log, lookupHandler, profileHandler, metaHandler, profileStream)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr), zap.String("env", cfg.AppEnv))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
