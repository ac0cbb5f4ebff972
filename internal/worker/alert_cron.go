package worker

// alert_cron.go
// Background goroutine that periodically scans stock levels and batch expiry
// dates and enqueues alert jobs for anything out of bounds. The heavy lifting
// (dedupe, persistence) happens in the alert worker so a slow scan never
// blocks request handling.

import (
	"context"
	"fmt"
	"time"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/repository"

	"github.com/rs/zerolog/log"
)

// AlertCronConfig holds all dependencies for the scan goroutine.
type AlertCronConfig struct {
	Items      repository.ItemRepository
	Batches    repository.BatchRepository
	Dispatcher *Dispatcher
	Interval   time.Duration
}

// StartAlertCron launches a background goroutine that ticks on the configured
// interval and enqueues low-stock and near-expiry alerts. It respects the
// context for graceful shutdown and runs one scan immediately at startup.
func StartAlertCron(ctx context.Context, cfg AlertCronConfig) {
	go func() {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		log.Info().Dur("interval", cfg.Interval).Msg("alert_cron: started")
		scan(ctx, cfg)

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("alert_cron: shutting down")
				return
			case <-ticker.C:
				scan(ctx, cfg)
			}
		}
	}()
}

func scan(ctx context.Context, cfg AlertCronConfig) {
	low, err := cfg.Items.ListBelowMinimum(ctx)
	if err != nil {
		log.Error().Err(err).Msg("alert_cron: low-stock scan failed")
	} else {
		for _, item := range low {
			payload := AlertPayload{
				Kind:   model.NotifyLowStock,
				ItemID: item.ItemID,
				Message: fmt.Sprintf("%s (%s) is below minimum level: %d on hand, minimum %d",
					item.Name, item.Manufacturer, item.OnHand, item.MinimumLevel),
			}
			if err := cfg.Dispatcher.EnqueueAlert(ctx, payload); err != nil {
				log.Error().Err(err).Msg("alert_cron: enqueue low-stock alert failed")
			}
		}
	}

	expiring, err := cfg.Batches.ListExpiringWithin(ctx, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("alert_cron: expiry scan failed")
		return
	}
	for i := range expiring {
		b := &expiring[i]
		name := b.ItemID.String()
		if b.Item != nil {
			name = b.Item.Name
		}
		batchID := b.ID
		payload := AlertPayload{
			Kind:    model.NotifyNearExpiry,
			ItemID:  b.ItemID,
			BatchID: &batchID,
			Message: fmt.Sprintf("batch of %s expires on %s with %d units remaining",
				name, b.ExpiryDate.Format("2006-01-02"), b.QuantityRemaining),
		}
		if err := cfg.Dispatcher.EnqueueAlert(ctx, payload); err != nil {
			log.Error().Err(err).Msg("alert_cron: enqueue expiry alert failed")
		}
	}
}
