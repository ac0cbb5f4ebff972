package repository

import (
	"context"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaleRepository stores sale segments. Like movements, records are created
// in the sale transaction and mutated only by the reversal status flip.
type SaleRepository interface {
	CreateTx(tx *gorm.DB, s *model.SaleRecord) error
	FindGroup(ctx context.Context, groupID uuid.UUID) ([]model.SaleRecord, error)
	MarkGroupReversedTx(tx *gorm.DB, groupID uuid.UUID) (int64, error)
	List(ctx context.Context, filter dto.SaleFilter) ([]model.SaleRecord, int64, error)
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.SaleRecord) error {
	return tx.Create(s).Error
}

func (r *saleRepo) FindGroup(ctx context.Context, groupID uuid.UUID) ([]model.SaleRecord, error) {
	var records []model.SaleRecord
	err := r.db.WithContext(ctx).
		Where("sale_group_id = ?", groupID).
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}

func (r *saleRepo) MarkGroupReversedTx(tx *gorm.DB, groupID uuid.UUID) (int64, error) {
	res := tx.Model(&model.SaleRecord{}).
		Where("sale_group_id = ? AND status = ?", groupID, model.StatusActive).
		Update("status", model.StatusReversed)
	return res.RowsAffected, res.Error
}

func (r *saleRepo) List(ctx context.Context, filter dto.SaleFilter) ([]model.SaleRecord, int64, error) {
	var records []model.SaleRecord
	var total int64

	q := r.db.WithContext(ctx).Model(&model.SaleRecord{})
	if filter.ItemID != nil {
		q = q.Where("item_id = ?", *filter.ItemID)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Date != "" {
		q = q.Where("DATE(sale_date) = ?", filter.Date)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	err := q.Preload("Item").
		Order("sale_date DESC, created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&records).Error
	return records, total, err
}
