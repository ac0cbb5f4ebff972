package infra

import (
	"fmt"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that
// AutoMigrate cannot express (sequences, partial indexes, the single-row
// ledger guard).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Item{},
		&model.StockRecord{},
		&model.PurchaseBatch{},
		&model.MovementRecord{},
		&model.SaleRecord{},
		&model.IncomeEntry{},
		&model.SalesTotalLedger{},
		&model.SalesLogEntry{},
		&model.Expense{},
		&model.Patient{},
		&model.Doctor{},
		&model.KhataEntry{},
		&model.DepartmentBill{},
		&model.Notification{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db); err != nil {
		return nil, fmt.Errorf("schema patches: %w", err)
	}

	return db, nil
}

// applySchemaPatches applies DDL that GORM tags cannot express. Every
// statement is idempotent so restarting against a patched schema is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// Registration numbers come from a dedicated sequence so they survive
		// patient deletion and never repeat.
		{"create patients_registration_no_seq",
			`CREATE SEQUENCE IF NOT EXISTS patients_registration_no_seq START 1`},

		// The sales-total ledger is a single row keyed "pharmacy". The check
		// blocks accidental inserts with any other key.
		{"enforce singleton ledger key", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_ledger_singleton') THEN
    ALTER TABLE sales_total_ledger
      ADD CONSTRAINT chk_ledger_singleton CHECK (key = 'pharmacy');
  END IF;
END $$`},

		// Partial index: the notification dedupe check only ever looks at
		// unseen rows.
		{"partial index on unseen notifications",
			`CREATE INDEX IF NOT EXISTS idx_notifications_open
			 ON notifications (kind, item_id) WHERE NOT seen`},

		// Reversal lookups walk a whole group; cover group+status.
		{"index movement groups by status",
			`CREATE INDEX IF NOT EXISTS idx_movements_group_status
			 ON movement_records (transfer_group_id, status)`},
		{"index sale groups by status",
			`CREATE INDEX IF NOT EXISTS idx_sales_group_status
			 ON sale_records (sale_group_id, status)`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("%s: %w", p.descr, err)
		}
	}
	return nil
}
