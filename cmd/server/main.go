package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/config"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/infra"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/repository"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/router"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Seed the singleton sales-total row before any request can touch it.
	if err := repository.NewLedgerRepository(db).EnsureExists(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed sales total ledger")
	}

	// Start the alert pipeline: a cron goroutine scans stock levels and
	// batch expiry dates and enqueues jobs; a goroutine pool consumes them
	// and writes deduped dashboard notifications.
	itemRepo := repository.NewItemRepository(db)
	batchRepo := repository.NewBatchRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	dispatcher := worker.NewDispatcher(rdb)
	workerHandlers := &worker.WorkerHandlers{
		Alert: worker.NewAlertWorker(notificationRepo),
	}
	worker.StartWorkerPool(ctx, rdb, workerHandlers, cfg.WorkerPoolSize)
	worker.StartAlertCron(ctx, worker.AlertCronConfig{
		Items:      itemRepo,
		Batches:    batchRepo,
		Dispatcher: dispatcher,
		Interval:   time.Duration(cfg.AlertScanMinutes) * time.Minute,
	})

	r := router.New(cfg, db, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("clinic backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
