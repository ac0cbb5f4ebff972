package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Doctor is a practitioner who may take a revenue share of department bills.
type Doctor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null;index"`
	Specialty string
	Phone     string
	// SharePct is the doctor's percentage of each attributed bill (0–100).
	SharePct  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Active    bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// KhataEntry is one line of a doctor's running account ("khata"): credits
// accrue from department bills, debits from payouts or bill reversals.
// Entries are append-only; a reversal writes an inverse entry rather than
// deleting history.
type KhataEntry struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DoctorID uuid.UUID `gorm:"type:uuid;not null;index"`
	// BillID links the credit (or its reversing debit) to the bill.
	BillID      *uuid.UUID      `gorm:"type:uuid;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"` // positive = credit
	Description string
	CreatedAt   time.Time

	Doctor *Doctor `gorm:"foreignKey:DoctorID"`
}

// TableName overrides GORM's default (khata_entries).
func (KhataEntry) TableName() string { return "khata_entries" }
