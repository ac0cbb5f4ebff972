package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleRecord is one batch segment of a completed pharmacy sale. A sale line
// that consumes two batches yields two records; all records of one sale call
// share a SaleGroupID so the receipt and the reversal operate on the whole
// sale. Revenue is the gross amount for this segment, Cost the FIFO
// cost basis taken from the consumed batch.
type SaleRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleGroupID uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID      uuid.UUID `gorm:"type:uuid;not null;index"`
	BatchID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity    int       `gorm:"not null"`
	Revenue     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Cost        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Category    ItemCategory    `gorm:"type:varchar(20);not null"`
	SaleDate    time.Time       `gorm:"not null;index"`
	Status      RecordStatus    `gorm:"type:varchar(20);not null;default:'active'"`
	ActorID     uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt   time.Time

	Item  *Item          `gorm:"foreignKey:ItemID"`
	Batch *PurchaseBatch `gorm:"foreignKey:BatchID"`
}

// TableName overrides GORM's default (sale_records).
func (SaleRecord) TableName() string { return "sale_records" }
