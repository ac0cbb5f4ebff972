package repository

import (
	"context"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DoctorRepository covers doctors and their khata (running revenue-share
// account). Khata entries are append-only; the balance is a SUM, never a
// stored column, so a missed compensating entry is visible in the history.
type DoctorRepository interface {
	Create(ctx context.Context, d *model.Doctor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
	List(ctx context.Context) ([]model.Doctor, error)
	Update(ctx context.Context, d *model.Doctor) error
	Deactivate(ctx context.Context, id uuid.UUID) error

	CreateKhataEntryTx(tx *gorm.DB, e *model.KhataEntry) error
	// KhataCreditForBillTx returns the credit entry the bill originally
	// wrote, so a reversal can mirror the recorded amount instead of
	// recomputing it from the doctor's current share.
	KhataCreditForBillTx(tx *gorm.DB, billID uuid.UUID) (*model.KhataEntry, error)
	KhataBalance(ctx context.Context, doctorID uuid.UUID) (decimal.Decimal, error)
	ListKhata(ctx context.Context, doctorID uuid.UUID) ([]model.KhataEntry, error)
}

type doctorRepo struct{ db *gorm.DB }

func NewDoctorRepository(db *gorm.DB) DoctorRepository { return &doctorRepo{db: db} }

func (r *doctorRepo) Create(ctx context.Context, d *model.Doctor) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *doctorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	var d model.Doctor
	err := r.db.WithContext(ctx).First(&d, id).Error
	return &d, err
}

func (r *doctorRepo) List(ctx context.Context) ([]model.Doctor, error) {
	var doctors []model.Doctor
	err := r.db.WithContext(ctx).Where("active = true").Order("name ASC").Find(&doctors).Error
	return doctors, err
}

func (r *doctorRepo) Update(ctx context.Context, d *model.Doctor) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *doctorRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Doctor{}).
		Where("id = ?", id).Update("active", false).Error
}

func (r *doctorRepo) CreateKhataEntryTx(tx *gorm.DB, e *model.KhataEntry) error {
	return tx.Create(e).Error
}

func (r *doctorRepo) KhataCreditForBillTx(tx *gorm.DB, billID uuid.UUID) (*model.KhataEntry, error) {
	var e model.KhataEntry
	err := tx.Where("bill_id = ? AND amount > 0", billID).First(&e).Error
	return &e, err
}

func (r *doctorRepo) KhataBalance(ctx context.Context, doctorID uuid.UUID) (decimal.Decimal, error) {
	var raw decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.KhataEntry{}).
		Where("doctor_id = ?", doctorID).
		Select("SUM(amount)").
		Scan(&raw).Error
	if err != nil || !raw.Valid {
		return decimal.Zero, err
	}
	return raw.Decimal, nil
}

func (r *doctorRepo) ListKhata(ctx context.Context, doctorID uuid.UUID) ([]model.KhataEntry, error) {
	var entries []model.KhataEntry
	err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}
