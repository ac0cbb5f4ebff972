package dto

import "github.com/google/uuid"

// ─── Filter / List ──────────────────────────────────────────────────────────

// ItemFilter is bound from the query string of GET /v1/items.
type ItemFilter struct {
	Name     string `form:"name"`
	Category string `form:"category" validate:"omitempty,oneof=drug glasses frame sunglasses"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateItemRequest struct {
	Name             string `json:"name"               validate:"required,min=1,max=200"`
	Manufacturer     string `json:"manufacturer"       validate:"required,min=1,max=200"`
	Category         string `json:"category"           validate:"required,oneof=drug glasses frame sunglasses"`
	MinimumLevel     int    `json:"minimum_level"      validate:"min=0"`
	ExpiryNotifyDays int    `json:"expiry_notify_days" validate:"min=0"`
}

type UpdateItemRequest struct {
	MinimumLevel     *int `json:"minimum_level"      validate:"omitempty,min=0"`
	ExpiryNotifyDays *int `json:"expiry_notify_days" validate:"omitempty,min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Manufacturer     string `json:"manufacturer"`
	Category         string `json:"category"`
	MinimumLevel     int    `json:"minimum_level"`
	ExpiryNotifyDays int    `json:"expiry_notify_days"`
}

type ItemListResponse struct {
	Data  []ItemResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// LowStockItem is one row of the below-minimum report feeding the alert cron.
type LowStockItem struct {
	ItemID       uuid.UUID `json:"item_id"`
	Name         string    `json:"name"`
	Manufacturer string    `json:"manufacturer"`
	MinimumLevel int       `json:"minimum_level"`
	OnHand       int       `json:"on_hand"`
}
