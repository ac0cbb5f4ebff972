package repository

import (
	"context"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemRepository defines the data access contract for the item catalog.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
type ItemRepository interface {
	Create(ctx context.Context, i *model.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error)
	// FindByNameManufacturer is the catalog lookup used by transfer and
	// intake: the (name, manufacturer) pair is the item's natural key.
	FindByNameManufacturer(ctx context.Context, name, manufacturer string) (*model.Item, error)
	List(ctx context.Context, filter dto.ItemFilter) ([]model.Item, int64, error)
	Update(ctx context.Context, i *model.Item) error
	// ListBelowMinimum returns items whose combined on-hand quantity across
	// all locations is under their minimum level. Used by the alert cron.
	ListBelowMinimum(ctx context.Context) ([]dto.LowStockItem, error)
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &itemRepo{db: db} }

func (r *itemRepo) Create(ctx context.Context, i *model.Item) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *itemRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	var i model.Item
	err := r.db.WithContext(ctx).First(&i, id).Error
	return &i, err
}

func (r *itemRepo) FindByNameManufacturer(ctx context.Context, name, manufacturer string) (*model.Item, error) {
	var i model.Item
	err := r.db.WithContext(ctx).
		Where("name = ? AND manufacturer = ?", name, manufacturer).
		First(&i).Error
	return &i, err
}

func (r *itemRepo) List(ctx context.Context, filter dto.ItemFilter) ([]model.Item, int64, error) {
	var items []model.Item
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Item{})
	if filter.Name != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("name ASC").Limit(filter.Limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *itemRepo) Update(ctx context.Context, i *model.Item) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *itemRepo) ListBelowMinimum(ctx context.Context) ([]dto.LowStockItem, error) {
	var rows []dto.LowStockItem
	err := r.db.WithContext(ctx).
		Table("items").
		Select("items.id AS item_id, items.name, items.manufacturer, items.minimum_level, COALESCE(SUM(stock_records.quantity), 0) AS on_hand").
		Joins("LEFT JOIN stock_records ON stock_records.item_id = items.id").
		Group("items.id").
		Having("COALESCE(SUM(stock_records.quantity), 0) < items.minimum_level").
		Scan(&rows).Error
	return rows, err
}
