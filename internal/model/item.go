package model

import (
	"time"

	"github.com/google/uuid"
)

// ItemCategory is the finite set of stocked product kinds.
type ItemCategory string

const (
	CategoryDrug       ItemCategory = "drug"
	CategoryGlasses    ItemCategory = "glasses"
	CategoryFrame      ItemCategory = "frame"
	CategorySunglasses ItemCategory = "sunglasses"
)

// IsValid reports whether c is one of the known categories.
func (c ItemCategory) IsValid() bool {
	switch c {
	case CategoryDrug, CategoryGlasses, CategoryFrame, CategorySunglasses:
		return true
	}
	return false
}

// Item is a catalog entry for a stocked product. The (Name, Manufacturer)
// pair is unique — two manufacturers may sell the same drug name, but a
// single manufacturer's product appears once.
type Item struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string       `gorm:"not null;index;uniqueIndex:uq_items_name_manufacturer"`
	Manufacturer string       `gorm:"not null;uniqueIndex:uq_items_name_manufacturer"`
	Category     ItemCategory `gorm:"type:varchar(20);not null;default:'drug'"`
	// MinimumLevel triggers a low-stock alert when total on-hand drops below it.
	MinimumLevel int `gorm:"not null;default:0"`
	// ExpiryNotifyDays is how many days before a batch's expiry date the
	// alert cron starts flagging it.
	ExpiryNotifyDays int `gorm:"not null;default:30"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
