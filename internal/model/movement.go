package model

import (
	"time"

	"github.com/google/uuid"
)

// RecordStatus is the two-state lifecycle shared by movement and sale
// records: active until reversed, and the transition is one-way.
type RecordStatus string

const (
	StatusActive   RecordStatus = "active"
	StatusReversed RecordStatus = "reversed"
)

// MovementRecord is the audit entry for one batch segment consumed by an
// inventory → pharmacy transfer. A transfer that spans several batches
// produces several records sharing one TransferGroupID, so the whole
// transfer reverses as a unit. Immutable once created except for the
// active → reversed status flip.
type MovementRecord struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TransferGroupID uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID          uuid.UUID `gorm:"type:uuid;not null;index"`
	BatchID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity        int       `gorm:"not null"`
	Category        ItemCategory `gorm:"type:varchar(20);not null"`
	Status          RecordStatus `gorm:"type:varchar(20);not null;default:'active'"`
	ActorID         uuid.UUID    `gorm:"type:uuid;not null"`
	CreatedAt       time.Time

	Item  *Item          `gorm:"foreignKey:ItemID"`
	Batch *PurchaseBatch `gorm:"foreignKey:BatchID"`
}

// TableName overrides GORM's default (movement_records).
func (MovementRecord) TableName() string { return "movement_records" }
