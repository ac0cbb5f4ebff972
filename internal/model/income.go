package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeSource is the closed set of transaction kinds that can feed the
// income ledger. Each entry carries exactly one source kind plus the ID of
// the originating record, switched on explicitly — never matched by free
// string tags.
type IncomeSource string

const (
	SourcePharmacySale   IncomeSource = "pharmacy_sale"
	SourceDepartmentBill IncomeSource = "department_bill"
)

// IsValid reports whether s is a known income source kind.
func (s IncomeSource) IsValid() bool {
	return s == SourcePharmacySale || s == SourceDepartmentBill
}

// IncomeEntry is a derived financial record: net income attributed to a
// sale group or a department bill. Created only when net income is
// positive; removed by the explicit reversal of its source, never by an
// implicit delete hook.
type IncomeEntry struct {
	ID     uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Source IncomeSource `gorm:"type:varchar(30);not null;index:idx_income_source_ref"`
	// SourceRef is the SaleGroupID or DepartmentBill ID, per Source.
	SourceRef   uuid.UUID       `gorm:"type:uuid;not null;index:idx_income_source_ref"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Category    string          `gorm:"not null"`
	Description string
	Date        time.Time `gorm:"not null;index"`
	CreatedAt   time.Time
}

// TableName overrides GORM's default (income_entries).
func (IncomeEntry) TableName() string { return "income_entries" }
