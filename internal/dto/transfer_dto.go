package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// TransferRequest moves stock from inventory to the pharmacy counter.
type TransferRequest struct {
	Name         string          `json:"name"         validate:"required,min=1,max=200"`
	Manufacturer string          `json:"manufacturer" validate:"required,min=1,max=200"`
	Quantity     int             `json:"quantity"     validate:"required,min=1"`
	SalePrice    decimal.Decimal `json:"sale_price"   validate:"required"`
}

// ─── Filter / List ──────────────────────────────────────────────────────────

type MovementFilter struct {
	ItemID   *uuid.UUID `form:"item_id"`
	Category string     `form:"category" validate:"omitempty,oneof=drug glasses frame sunglasses"`
	Date     string     `form:"date"     validate:"omitempty,datetime=2006-01-02"`
	Page     int        `form:"page,default=1"   validate:"min=1"`
	Limit    int        `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// MovementSegmentResponse is one batch segment of a transfer.
type MovementSegmentResponse struct {
	ID       string `json:"id"`
	BatchID  string `json:"batch_id"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
}

// TransferResponse describes a committed transfer: what moved, from which
// batches, and the resulting stock levels on both sides.
type TransferResponse struct {
	TransferGroupID   string                    `json:"transfer_group_id"`
	ItemID            string                    `json:"item_id"`
	Name              string                    `json:"name"`
	Quantity          int                       `json:"quantity"`
	Segments          []MovementSegmentResponse `json:"segments"`
	InventoryQuantity int                       `json:"inventory_quantity"`
	PharmacyQuantity  int                       `json:"pharmacy_quantity"`
}

type MovementListItem struct {
	ID              string `json:"id"`
	TransferGroupID string `json:"transfer_group_id"`
	ItemName        string `json:"item_name"`
	BatchID         string `json:"batch_id"`
	Quantity        int    `json:"quantity"`
	Category        string `json:"category"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

type MovementListResponse struct {
	Data  []MovementListItem `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
