package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Location identifies where stock physically sits.
type Location string

const (
	LocationInventory Location = "inventory"
	LocationPharmacy  Location = "pharmacy"
)

// IsValid reports whether l is a known stock location.
func (l Location) IsValid() bool {
	return l == LocationInventory || l == LocationPharmacy
}

// StockRecord is the on-hand quantity of an Item at one location.
// Quantity is never negative; it is mutated only by purchase intake,
// Transfer, Sale and Reversal — always inside the caller's transaction.
// One record per (item, location), enforced by a unique index.
type StockRecord struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ItemID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_stock_item_location"`
	Location Location  `gorm:"type:varchar(20);not null;uniqueIndex:uq_stock_item_location"`
	Quantity int       `gorm:"not null;default:0;check:quantity >= 0"`
	// UnitSalePrice applies at the pharmacy counter; inventory records keep
	// the last known price so transfers can default it.
	UnitSalePrice decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Item *Item `gorm:"foreignKey:ItemID"`
}

// TableName overrides GORM's pluralization (stock_records, not stock_record).
func (StockRecord) TableName() string { return "stock_records" }
