package repository

import (
	"context"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MovementRepository stores the transfer audit trail. Records are created
// inside the transfer transaction and only ever updated to flip
// active → reversed.
type MovementRepository interface {
	CreateTx(tx *gorm.DB, m *model.MovementRecord) error
	FindGroup(ctx context.Context, groupID uuid.UUID) ([]model.MovementRecord, error)
	// MarkGroupReversedTx flips every active record in the group; reports
	// rows matched so the caller can detect an already-reversed group.
	MarkGroupReversedTx(tx *gorm.DB, groupID uuid.UUID) (int64, error)
	List(ctx context.Context, filter dto.MovementFilter) ([]model.MovementRecord, int64, error)
}

type movementRepo struct{ db *gorm.DB }

func NewMovementRepository(db *gorm.DB) MovementRepository { return &movementRepo{db: db} }

func (r *movementRepo) CreateTx(tx *gorm.DB, m *model.MovementRecord) error {
	return tx.Create(m).Error
}

func (r *movementRepo) FindGroup(ctx context.Context, groupID uuid.UUID) ([]model.MovementRecord, error) {
	var records []model.MovementRecord
	err := r.db.WithContext(ctx).
		Where("transfer_group_id = ?", groupID).
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}

func (r *movementRepo) MarkGroupReversedTx(tx *gorm.DB, groupID uuid.UUID) (int64, error) {
	res := tx.Model(&model.MovementRecord{}).
		Where("transfer_group_id = ? AND status = ?", groupID, model.StatusActive).
		Update("status", model.StatusReversed)
	return res.RowsAffected, res.Error
}

func (r *movementRepo) List(ctx context.Context, filter dto.MovementFilter) ([]model.MovementRecord, int64, error) {
	var records []model.MovementRecord
	var total int64

	q := r.db.WithContext(ctx).Model(&model.MovementRecord{})
	if filter.ItemID != nil {
		q = q.Where("item_id = ?", *filter.ItemID)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Date != "" {
		q = q.Where("DATE(created_at) = ?", filter.Date)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	err := q.Preload("Item").Preload("Batch").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&records).Error
	return records, total, err
}

// normalizePage defaults page/limit the way the list endpoints document.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 500 {
		limit = 50
	}
	return page, limit
}
