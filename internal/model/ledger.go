package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesTotalLedgerKey is the fixed primary key of the singleton row. A
// partial unique index applied in infra keeps the table single-row even if
// application code misbehaves.
const SalesTotalLedgerKey = "pharmacy"

// SalesTotalLedger is the running aggregate of gross pharmacy revenue not
// yet transferred to the daily sales log. Incremented inside each sale's
// transaction; decremented only by TransferToLog, which must not take the
// balance negative.
type SalesTotalLedger struct {
	Key       string          `gorm:"primaryKey;type:varchar(20)"`
	Balance   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0;check:balance >= 0"`
	UpdatedAt time.Time
}

// TableName overrides GORM's default (sales_total_ledgers → sales_total_ledger).
func (SalesTotalLedger) TableName() string { return "sales_total_ledger" }

// SalesLogEntry is the immutable audit row written each time a slice of the
// running total is moved out to the external sales log.
type SalesLogEntry struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Amount      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Description string
	ActorID     uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
}

// TableName overrides GORM's default (sales_log_entries).
func (SalesLogEntry) TableName() string { return "sales_log_entries" }
