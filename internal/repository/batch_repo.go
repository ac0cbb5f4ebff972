package repository

import (
	"context"
	"time"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BatchRepository is the batch store. FIFO ordering (purchase date, then
// insertion order) lives here so every consumer — transfer and sale alike —
// sees the same next batch. ConsumeTx's conditional decrement is the
// transactional guard that stops two concurrent writers over-consuming a
// batch: the loser matches zero rows.
type BatchRepository interface {
	Create(ctx context.Context, b *model.PurchaseBatch) error
	CreateTx(tx *gorm.DB, b *model.PurchaseBatch) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PurchaseBatch, error)
	// NextAvailableTx returns the oldest batch with remaining stock for the
	// item, row-locked, or gorm.ErrRecordNotFound.
	NextAvailableTx(tx *gorm.DB, itemID uuid.UUID) (*model.PurchaseBatch, error)
	// ConsumeTx decrements quantity_remaining iff enough remains; reports
	// rows matched.
	ConsumeTx(tx *gorm.DB, batchID uuid.UUID, qty int) (int64, error)
	// RestoreTx increments quantity_remaining and returns the updated batch
	// so the caller can detect restoration past quantity_purchased.
	RestoreTx(tx *gorm.DB, batchID uuid.UUID, qty int) (*model.PurchaseBatch, error)
	// CapRemainingTx clamps quantity_remaining back to quantity_purchased.
	CapRemainingTx(tx *gorm.DB, batchID uuid.UUID) error
	SumRemaining(ctx context.Context, itemID uuid.UUID) (int, error)
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]model.PurchaseBatch, error)
	// ListExpiringWithin returns batches with stock whose expiry date falls
	// inside their item's notify window ending at horizon days from now.
	ListExpiringWithin(ctx context.Context, now time.Time) ([]model.PurchaseBatch, error)
}

type batchRepo struct{ db *gorm.DB }

func NewBatchRepository(db *gorm.DB) BatchRepository { return &batchRepo{db: db} }

func (r *batchRepo) Create(ctx context.Context, b *model.PurchaseBatch) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *batchRepo) CreateTx(tx *gorm.DB, b *model.PurchaseBatch) error {
	return tx.Create(b).Error
}

func (r *batchRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PurchaseBatch, error) {
	var b model.PurchaseBatch
	err := r.db.WithContext(ctx).First(&b, id).Error
	return &b, err
}

func (r *batchRepo) NextAvailableTx(tx *gorm.DB, itemID uuid.UUID) (*model.PurchaseBatch, error) {
	var b model.PurchaseBatch
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("item_id = ? AND quantity_remaining > 0", itemID).
		Order("purchase_date ASC, created_at ASC, id ASC").
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *batchRepo) ConsumeTx(tx *gorm.DB, batchID uuid.UUID, qty int) (int64, error) {
	res := tx.Model(&model.PurchaseBatch{}).
		Where("id = ? AND quantity_remaining >= ?", batchID, qty).
		Update("quantity_remaining", gorm.Expr("quantity_remaining - ?", qty))
	return res.RowsAffected, res.Error
}

func (r *batchRepo) RestoreTx(tx *gorm.DB, batchID uuid.UUID, qty int) (*model.PurchaseBatch, error) {
	if err := tx.Model(&model.PurchaseBatch{}).
		Where("id = ?", batchID).
		Update("quantity_remaining", gorm.Expr("quantity_remaining + ?", qty)).Error; err != nil {
		return nil, err
	}
	var b model.PurchaseBatch
	if err := tx.First(&b, batchID).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *batchRepo) CapRemainingTx(tx *gorm.DB, batchID uuid.UUID) error {
	return tx.Model(&model.PurchaseBatch{}).
		Where("id = ? AND quantity_remaining > quantity_purchased", batchID).
		Update("quantity_remaining", gorm.Expr("quantity_purchased")).Error
}

func (r *batchRepo) SumRemaining(ctx context.Context, itemID uuid.UUID) (int, error) {
	var sum int
	err := r.db.WithContext(ctx).Model(&model.PurchaseBatch{}).
		Where("item_id = ?", itemID).
		Select("COALESCE(SUM(quantity_remaining), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *batchRepo) ListByItem(ctx context.Context, itemID uuid.UUID) ([]model.PurchaseBatch, error) {
	var batches []model.PurchaseBatch
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("purchase_date ASC, created_at ASC, id ASC").
		Find(&batches).Error
	return batches, err
}

func (r *batchRepo) ListExpiringWithin(ctx context.Context, now time.Time) ([]model.PurchaseBatch, error) {
	var batches []model.PurchaseBatch
	err := r.db.WithContext(ctx).
		Joins("JOIN items ON items.id = purchase_batches.item_id").
		Where("purchase_batches.quantity_remaining > 0").
		Where("purchase_batches.expiry_date IS NOT NULL").
		Where("purchase_batches.expiry_date <= ? + (items.expiry_notify_days * INTERVAL '1 day')", now).
		Preload("Item").
		Find(&batches).Error
	return batches, err
}
