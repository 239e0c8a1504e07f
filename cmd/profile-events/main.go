package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/based-profile/backend/internal/config"
	"github.com/based-profile/backend/internal/db"
	"github.com/based-profile/backend/internal/events"
	"go.uber.org/zap"
)

// profile-events tails the profile event channel and logs every resolution.

func main() {
	cfg := config.Load()

	log, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.RedisURL == "" {
		log.Fatal("REDIS_URL is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	subscriber := events.NewRedisSubscriber(rdb, log)
	err = subscriber.Subscribe(ctx, cfg.EventsChannel, func(event events.Event) {
		if event.Type != events.EventProfileResolved {
			log.Debug("ignoring event", zap.String("type", event.Type))
			return
		}
		log.Info("profile resolved",
			zap.Any("fid", event.Payload["fid"]),
			zap.Any("display_name", event.Payload["display_name"]),
			zap.Any("star_level", event.Payload["star_level"]),
			zap.Any("community_role", event.Payload["community_role"]),
			zap.Any("composite_score", event.Payload["composite_score"]),
			zap.Any("wallet_count", event.Payload["wallet_count"]),
		)
	})
	if err != nil {
		log.Fatal("failed to subscribe", zap.Error(err))
	}

	log.Info("profile-events started", zap.String("channel", cfg.EventsChannel))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down profile-events")
	cancel()
}
