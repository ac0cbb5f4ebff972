package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memNotificationRepo struct {
	notifications []model.Notification
}

func (r *memNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	r.notifications = append(r.notifications, *n)
	return nil
}

func (r *memNotificationRepo) ExistsOpen(_ context.Context, kind model.NotificationKind, itemID uuid.UUID, batchID *uuid.UUID) (bool, error) {
	for _, n := range r.notifications {
		if n.Seen || n.Kind != kind || n.ItemID != itemID {
			continue
		}
		if batchID == nil || (n.BatchID != nil && *n.BatchID == *batchID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memNotificationRepo) ListUnseen(_ context.Context) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range r.notifications {
		if !n.Seen {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *memNotificationRepo) MarkSeen(_ context.Context, id uuid.UUID) error {
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].Seen = true
		}
	}
	return nil
}

func payload(t *testing.T, p AlertPayload) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(p)
	require.NoError(t, err)
	return b
}

func TestAlertWorker_CreatesNotification(t *testing.T) {
	repo := &memNotificationRepo{}
	w := NewAlertWorker(repo)
	itemID := uuid.New()

	err := w.Process(context.Background(), payload(t, AlertPayload{
		Kind:    model.NotifyLowStock,
		ItemID:  itemID,
		Message: "Paracetamol below minimum level",
	}))
	require.NoError(t, err)

	require.Len(t, repo.notifications, 1)
	assert.Equal(t, model.NotifyLowStock, repo.notifications[0].Kind)
	assert.Equal(t, itemID, repo.notifications[0].ItemID)
	assert.False(t, repo.notifications[0].Seen)
}

func TestAlertWorker_DedupesOpenAlerts(t *testing.T) {
	repo := &memNotificationRepo{}
	w := NewAlertWorker(repo)
	p := payload(t, AlertPayload{
		Kind:    model.NotifyLowStock,
		ItemID:  uuid.New(),
		Message: "below minimum",
	})

	require.NoError(t, w.Process(context.Background(), p))
	require.NoError(t, w.Process(context.Background(), p))

	assert.Len(t, repo.notifications, 1, "the same open alert is never written twice")
}

func TestAlertWorker_NewAlertAfterSeen(t *testing.T) {
	repo := &memNotificationRepo{}
	w := NewAlertWorker(repo)
	p := payload(t, AlertPayload{
		Kind:    model.NotifyLowStock,
		ItemID:  uuid.New(),
		Message: "below minimum",
	})

	require.NoError(t, w.Process(context.Background(), p))
	require.NoError(t, repo.MarkSeen(context.Background(), repo.notifications[0].ID))
	require.NoError(t, w.Process(context.Background(), p))

	assert.Len(t, repo.notifications, 2, "a seen alert no longer blocks a new one")
}

func TestAlertWorker_MalformedPayloadIsDropped(t *testing.T) {
	repo := &memNotificationRepo{}
	w := NewAlertWorker(repo)

	// A malformed payload never succeeds on retry, so Process must swallow
	// it instead of sending it back to the queue.
	err := w.Process(context.Background(), json.RawMessage(`{"kind":`))
	assert.NoError(t, err)
	assert.Empty(t, repo.notifications)
}

func TestAlertWorker_PerBatchExpiryAlerts(t *testing.T) {
	repo := &memNotificationRepo{}
	w := NewAlertWorker(repo)
	itemID := uuid.New()
	batch1 := uuid.New()
	batch2 := uuid.New()

	require.NoError(t, w.Process(context.Background(), payload(t, AlertPayload{
		Kind: model.NotifyNearExpiry, ItemID: itemID, BatchID: &batch1, Message: "expiring",
	})))
	require.NoError(t, w.Process(context.Background(), payload(t, AlertPayload{
		Kind: model.NotifyNearExpiry, ItemID: itemID, BatchID: &batch2, Message: "expiring",
	})))

	assert.Len(t, repo.notifications, 2, "expiry alerts dedupe per batch, not per item")
}
