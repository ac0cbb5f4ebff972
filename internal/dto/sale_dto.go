package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// SaleLineRequest is one (item, quantity) line of a pharmacy sale.
type SaleLineRequest struct {
	ItemID   string `json:"item_id"  validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
	Category string `json:"category" validate:"required,oneof=drug glasses frame sunglasses"`
}

// RecordSaleRequest is the whole sale: all lines commit or none do.
type RecordSaleRequest struct {
	Lines    []SaleLineRequest `json:"sold_items" validate:"required,min=1,dive"`
	SaleDate string            `json:"date"       validate:"required,datetime=2006-01-02"`
}

// ─── Filter / List ──────────────────────────────────────────────────────────

type SaleFilter struct {
	ItemID   *uuid.UUID `form:"item_id"`
	Category string     `form:"category" validate:"omitempty,oneof=drug glasses frame sunglasses"`
	Date     string     `form:"date"     validate:"omitempty,datetime=2006-01-02"`
	Status   string     `form:"status"   validate:"omitempty,oneof=active reversed"`
	Page     int        `form:"page,default=1"   validate:"min=1"`
	Limit    int        `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ReceiptLine aggregates a sale's segments per item name — two lines for the
// same item merge on the receipt.
type ReceiptLine struct {
	Item     string          `json:"item"`
	Quantity int             `json:"quantity"`
	Income   decimal.Decimal `json:"income"`
}

// Receipt is the customer-facing result of a committed sale.
type Receipt struct {
	SaleGroupID string          `json:"sale_group_id"`
	Date        string          `json:"date"`
	Lines       []ReceiptLine   `json:"lines"`
	TotalIncome decimal.Decimal `json:"total_income"`
}

type SaleListItem struct {
	ID          string          `json:"id"`
	SaleGroupID string          `json:"sale_group_id"`
	ItemName    string          `json:"item_name"`
	BatchID     string          `json:"batch_id"`
	Quantity    int             `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
	Category    string          `json:"category"`
	SaleDate    string          `json:"sale_date"`
	Status      string          `json:"status"`
}

type SaleListResponse struct {
	Data  []SaleListItem `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
