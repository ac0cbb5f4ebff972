package repository

import (
	"context"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	// ExistsOpen reports whether an unseen alert of this kind already exists
	// for the item (and batch, when given), so the cron does not spam.
	ExistsOpen(ctx context.Context, kind model.NotificationKind, itemID uuid.UUID, batchID *uuid.UUID) (bool, error)
	ListUnseen(ctx context.Context) ([]model.Notification, error)
	MarkSeen(ctx context.Context, id uuid.UUID) error
}

type notificationRepo struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepo) ExistsOpen(ctx context.Context, kind model.NotificationKind, itemID uuid.UUID, batchID *uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("kind = ? AND item_id = ? AND seen = false", kind, itemID)
	if batchID != nil {
		q = q.Where("batch_id = ?", *batchID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *notificationRepo) ListUnseen(ctx context.Context) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.WithContext(ctx).
		Where("seen = false").
		Preload("Item").
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepo) MarkSeen(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ?", id).Update("seen", true).Error
}
