package repository

import (
	"context"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StockRepository is the stock ledger: one record per (item, location).
// All mutations run inside the caller's transaction; AdjustTx enforces the
// quantity >= 0 invariant at the SQL level so the losing side of a
// concurrent decrement is rejected rather than driven negative.
type StockRepository interface {
	Find(ctx context.Context, itemID uuid.UUID, loc model.Location) (*model.StockRecord, error)
	// FindTx reads the record with a row lock so concurrent operations on
	// the same item serialize inside the transaction.
	FindTx(tx *gorm.DB, itemID uuid.UUID, loc model.Location) (*model.StockRecord, error)
	CreateTx(tx *gorm.DB, s *model.StockRecord) error
	// AdjustTx applies delta and reports how many rows matched. Zero rows
	// with a negative delta means the guard rejected the update.
	AdjustTx(tx *gorm.DB, itemID uuid.UUID, loc model.Location, delta int) (int64, error)
	UpdatePriceTx(tx *gorm.DB, itemID uuid.UUID, loc model.Location, price decimal.Decimal) error
	List(ctx context.Context, loc model.Location, filter dto.StockFilter) ([]model.StockRecord, int64, error)
}

type stockRepo struct{ db *gorm.DB }

func NewStockRepository(db *gorm.DB) StockRepository { return &stockRepo{db: db} }

func (r *stockRepo) Find(ctx context.Context, itemID uuid.UUID, loc model.Location) (*model.StockRecord, error) {
	var s model.StockRecord
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND location = ?", itemID, loc).
		First(&s).Error
	return &s, err
}

func (r *stockRepo) FindTx(tx *gorm.DB, itemID uuid.UUID, loc model.Location) (*model.StockRecord, error) {
	var s model.StockRecord
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("item_id = ? AND location = ?", itemID, loc).
		First(&s).Error
	return &s, err
}

func (r *stockRepo) CreateTx(tx *gorm.DB, s *model.StockRecord) error {
	return tx.Create(s).Error
}

func (r *stockRepo) AdjustTx(tx *gorm.DB, itemID uuid.UUID, loc model.Location, delta int) (int64, error) {
	res := tx.Model(&model.StockRecord{}).
		Where("item_id = ? AND location = ? AND quantity + ? >= 0", itemID, loc, delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	return res.RowsAffected, res.Error
}

func (r *stockRepo) UpdatePriceTx(tx *gorm.DB, itemID uuid.UUID, loc model.Location, price decimal.Decimal) error {
	return tx.Model(&model.StockRecord{}).
		Where("item_id = ? AND location = ?", itemID, loc).
		Update("unit_sale_price", price).Error
}

func (r *stockRepo) List(ctx context.Context, loc model.Location, filter dto.StockFilter) ([]model.StockRecord, int64, error) {
	var records []model.StockRecord
	var total int64

	q := r.db.WithContext(ctx).Model(&model.StockRecord{}).
		Where("location = ?", loc).
		Joins("JOIN items ON items.id = stock_records.item_id")
	if filter.Name != "" {
		q = q.Where("items.name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Category != "" {
		q = q.Where("items.category = ?", filter.Category)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Item").Order("items.name ASC").
		Limit(filter.Limit).Offset(offset).
		Find(&records).Error
	return records, total, err
}
