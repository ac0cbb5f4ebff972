package repository

import (
	"context"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerRepository manages the single-row sales total ledger and its audit
// log. DecrementTx's balance >= amount guard is what makes concurrent
// transfer-to-log requests safe: the loser matches zero rows.
type LedgerRepository interface {
	Get(ctx context.Context) (*model.SalesTotalLedger, error)
	// EnsureExists inserts the singleton row if missing (startup).
	EnsureExists(ctx context.Context) error
	IncrementTx(tx *gorm.DB, amount decimal.Decimal) error
	DecrementTx(tx *gorm.DB, amount decimal.Decimal) (int64, error)
	// DecrementClampedTx floors the balance at zero instead of failing —
	// used by sale reversal, where the revenue may already have been
	// transferred to the log.
	DecrementClampedTx(tx *gorm.DB, amount decimal.Decimal) error
	CreateLogEntryTx(tx *gorm.DB, e *model.SalesLogEntry) error
	ListLogEntries(ctx context.Context, limit int) ([]model.SalesLogEntry, error)
}

type ledgerRepo struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) LedgerRepository { return &ledgerRepo{db: db} }

func (r *ledgerRepo) Get(ctx context.Context) (*model.SalesTotalLedger, error) {
	var l model.SalesTotalLedger
	err := r.db.WithContext(ctx).
		Where("key = ?", model.SalesTotalLedgerKey).
		First(&l).Error
	return &l, err
}

func (r *ledgerRepo) EnsureExists(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.SalesTotalLedger{Key: model.SalesTotalLedgerKey, Balance: decimal.Zero}).Error
}

func (r *ledgerRepo) IncrementTx(tx *gorm.DB, amount decimal.Decimal) error {
	return tx.Model(&model.SalesTotalLedger{}).
		Where("key = ?", model.SalesTotalLedgerKey).
		Update("balance", gorm.Expr("balance + ?", amount)).Error
}

func (r *ledgerRepo) DecrementTx(tx *gorm.DB, amount decimal.Decimal) (int64, error) {
	res := tx.Model(&model.SalesTotalLedger{}).
		Where("key = ? AND balance >= ?", model.SalesTotalLedgerKey, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	return res.RowsAffected, res.Error
}

func (r *ledgerRepo) DecrementClampedTx(tx *gorm.DB, amount decimal.Decimal) error {
	return tx.Model(&model.SalesTotalLedger{}).
		Where("key = ?", model.SalesTotalLedgerKey).
		Update("balance", gorm.Expr("GREATEST(balance - ?, 0)", amount)).Error
}

func (r *ledgerRepo) CreateLogEntryTx(tx *gorm.DB, e *model.SalesLogEntry) error {
	return tx.Create(e).Error
}

func (r *ledgerRepo) ListLogEntries(ctx context.Context, limit int) ([]model.SalesLogEntry, error) {
	if limit < 1 || limit > 500 {
		limit = 50
	}
	var entries []model.SalesLogEntry
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
