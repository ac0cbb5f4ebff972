package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxRunner opens the single atomic unit of work every engine operation runs
// in. Services never touch *gorm.DB directly except to thread the tx handle
// into repository *Tx methods; tests substitute an in-memory runner that
// snapshots stub state and restores it on error.
type TxRunner interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTxRunner struct{ db *gorm.DB }

func NewTxRunner(db *gorm.DB) TxRunner { return &gormTxRunner{db: db} }

func (r *gormTxRunner) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
