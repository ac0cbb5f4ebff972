package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind distinguishes what the stock alert cron flagged.
type NotificationKind string

const (
	NotifyLowStock   NotificationKind = "low_stock"
	NotifyNearExpiry NotificationKind = "near_expiry"
)

// Notification is a stock alert surfaced to the dashboard: an item under its
// minimum level, or a batch inside its expiry-notify window. Written by the
// alert worker, marked seen by the UI.
type Notification struct {
	ID      uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Kind    NotificationKind `gorm:"type:varchar(20);not null;index"`
	ItemID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	BatchID *uuid.UUID       `gorm:"type:uuid"`
	Message string           `gorm:"not null"`
	Seen    bool             `gorm:"not null;default:false;index"`
	CreatedAt time.Time

	Item *Item `gorm:"foreignKey:ItemID"`
}
