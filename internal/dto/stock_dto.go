package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// StockFilter is bound from the query string of the inventory / pharmacy
// stock listing endpoints.
type StockFilter struct {
	Name     string `form:"name"`
	Category string `form:"category" validate:"omitempty,oneof=drug glasses frame sunglasses"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

// PurchaseIntakeRequest books a new purchase batch into inventory. The item
// is resolved (or created) by its (name, manufacturer) natural key.
type PurchaseIntakeRequest struct {
	Name             string          `json:"name"          validate:"required,min=1,max=200"`
	Manufacturer     string          `json:"manufacturer"  validate:"required,min=1,max=200"`
	Category         string          `json:"category"      validate:"required,oneof=drug glasses frame sunglasses"`
	Quantity         int             `json:"quantity"      validate:"required,min=1"`
	UnitCost         decimal.Decimal `json:"unit_cost"     validate:"required"`
	PurchaseDate     string          `json:"purchase_date" validate:"required,datetime=2006-01-02"`
	ExpiryDate       *string         `json:"expiry_date"   validate:"omitempty,datetime=2006-01-02"`
	Supplier         string          `json:"supplier"`
	MinimumLevel     int             `json:"minimum_level"      validate:"min=0"`
	ExpiryNotifyDays int             `json:"expiry_notify_days" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type StockRecordResponse struct {
	ItemID        string          `json:"item_id"`
	Name          string          `json:"name"`
	Manufacturer  string          `json:"manufacturer"`
	Category      string          `json:"category"`
	Location      string          `json:"location"`
	Quantity      int             `json:"quantity"`
	UnitSalePrice decimal.Decimal `json:"unit_sale_price"`
}

type StockListResponse struct {
	Data  []StockRecordResponse `json:"data"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

type BatchResponse struct {
	ID                string          `json:"id"`
	ItemID            string          `json:"item_id"`
	PurchaseDate      string          `json:"purchase_date"`
	QuantityPurchased int             `json:"quantity_purchased"`
	QuantityRemaining int             `json:"quantity_remaining"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	ExpiryDate        *string         `json:"expiry_date"`
	Supplier          string          `json:"supplier"`
}
