package worker

// alert_worker.go
// Consumes alert jobs enqueued by the scan cron and persists them as
// dashboard notifications. Deduped: an unseen notification of the same kind
// for the same item (and batch) is never written twice.

import (
	"context"
	"encoding/json"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AlertPayload is the wire format of one alert job.
type AlertPayload struct {
	Kind    model.NotificationKind `json:"kind"`
	ItemID  uuid.UUID              `json:"item_id"`
	BatchID *uuid.UUID             `json:"batch_id,omitempty"`
	Message string                 `json:"message"`
}

type AlertWorker struct {
	notifications repository.NotificationRepository
}

func NewAlertWorker(notifications repository.NotificationRepository) *AlertWorker {
	return &AlertWorker{notifications: notifications}
}

func (w *AlertWorker) Process(ctx context.Context, payload json.RawMessage) error {
	var p AlertPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		log.Error().Err(err).Msg("alert_worker: bad payload")
		return nil // malformed payloads never succeed on retry
	}

	exists, err := w.notifications.ExistsOpen(ctx, p.Kind, p.ItemID, p.BatchID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	n := &model.Notification{
		Kind:    p.Kind,
		ItemID:  p.ItemID,
		BatchID: p.BatchID,
		Message: p.Message,
	}
	if err := w.notifications.Create(ctx, n); err != nil {
		return err
	}

	log.Info().
		Str("kind", string(p.Kind)).
		Str("item_id", p.ItemID.String()).
		Msg("alert_worker: notification created")
	return nil
}
