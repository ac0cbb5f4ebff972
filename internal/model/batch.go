package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseBatch is a discrete purchase event for an Item. Batches are the
// historical cost record: they are never deleted, only their
// QuantityRemaining moves. FIFO consumption orders by PurchaseDate, then
// CreatedAt, then ID for a stable tie-break when several batches arrive the
// same day.
type PurchaseBatch struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ItemID            uuid.UUID `gorm:"type:uuid;not null;index:idx_batches_item_date"`
	PurchaseDate      time.Time `gorm:"not null;index:idx_batches_item_date"`
	QuantityPurchased int       `gorm:"not null"`
	QuantityRemaining int       `gorm:"not null;check:quantity_remaining >= 0"`
	UnitCost          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ExpiryDate        *time.Time
	// Supplier is free text on the intake form, kept for purchase reports.
	Supplier  string
	CreatedAt time.Time
	UpdatedAt time.Time

	Item *Item `gorm:"foreignKey:ItemID"`
}

// TableName overrides GORM's default (purchase_batches).
func (PurchaseBatch) TableName() string { return "purchase_batches" }
