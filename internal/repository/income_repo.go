package repository

import (
	"context"
	"time"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IncomeRepository stores derived income entries. Deletion happens only
// through the explicit reversal of the entry's source record.
type IncomeRepository interface {
	CreateTx(tx *gorm.DB, e *model.IncomeEntry) error
	DeleteBySourceTx(tx *gorm.DB, source model.IncomeSource, ref uuid.UUID) error
	ListByPeriod(ctx context.Context, from, to time.Time) ([]model.IncomeEntry, error)
	SumByPeriod(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	SumByCategory(ctx context.Context, from, to time.Time) (map[string]decimal.Decimal, error)
}

type incomeRepo struct{ db *gorm.DB }

func NewIncomeRepository(db *gorm.DB) IncomeRepository { return &incomeRepo{db: db} }

func (r *incomeRepo) CreateTx(tx *gorm.DB, e *model.IncomeEntry) error {
	return tx.Create(e).Error
}

func (r *incomeRepo) DeleteBySourceTx(tx *gorm.DB, source model.IncomeSource, ref uuid.UUID) error {
	return tx.Where("source = ? AND source_ref = ?", source, ref).
		Delete(&model.IncomeEntry{}).Error
}

func (r *incomeRepo) ListByPeriod(ctx context.Context, from, to time.Time) ([]model.IncomeEntry, error) {
	var entries []model.IncomeEntry
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *incomeRepo) SumByPeriod(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var raw decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.IncomeEntry{}).
		Where("date >= ? AND date < ?", from, to).
		Select("SUM(amount)").
		Scan(&raw).Error
	if err != nil || !raw.Valid {
		return decimal.Zero, err
	}
	return raw.Decimal, nil
}

func (r *incomeRepo) SumByCategory(ctx context.Context, from, to time.Time) (map[string]decimal.Decimal, error) {
	var rows []struct {
		Category string
		Total    decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.IncomeEntry{}).
		Where("date >= ? AND date < ?", from, to).
		Select("category, SUM(amount) AS total").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	sums := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		sums[row.Category] = row.Total
	}
	return sums, nil
}
