package repository

import (
	"context"
	"time"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BillRepository interface {
	CreateTx(tx *gorm.DB, b *model.DepartmentBill) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.DepartmentBill, error)
	// MarkReversedTx flips the bill active → reversed; zero rows means it
	// already was.
	MarkReversedTx(tx *gorm.DB, id uuid.UUID) (int64, error)
	List(ctx context.Context, filter dto.BillFilter) ([]model.DepartmentBill, int64, error)
	SumByDepartment(ctx context.Context, from, to time.Time) (map[model.Department]decimal.Decimal, error)
}

type billRepo struct{ db *gorm.DB }

func NewBillRepository(db *gorm.DB) BillRepository { return &billRepo{db: db} }

func (r *billRepo) CreateTx(tx *gorm.DB, b *model.DepartmentBill) error {
	return tx.Create(b).Error
}

func (r *billRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.DepartmentBill, error) {
	var b model.DepartmentBill
	err := r.db.WithContext(ctx).Preload("Patient").Preload("Doctor").First(&b, id).Error
	return &b, err
}

func (r *billRepo) MarkReversedTx(tx *gorm.DB, id uuid.UUID) (int64, error) {
	res := tx.Model(&model.DepartmentBill{}).
		Where("id = ? AND status = ?", id, model.StatusActive).
		Update("status", model.StatusReversed)
	return res.RowsAffected, res.Error
}

func (r *billRepo) List(ctx context.Context, filter dto.BillFilter) ([]model.DepartmentBill, int64, error) {
	var bills []model.DepartmentBill
	var total int64

	q := r.db.WithContext(ctx).Model(&model.DepartmentBill{})
	if filter.Department != "" {
		q = q.Where("department = ?", filter.Department)
	}
	if filter.PatientID != nil {
		q = q.Where("patient_id = ?", *filter.PatientID)
	}
	if filter.DoctorID != nil {
		q = q.Where("doctor_id = ?", *filter.DoctorID)
	}
	if filter.Date != "" {
		q = q.Where("DATE(bill_date) = ?", filter.Date)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	err := q.Preload("Patient").Preload("Doctor").
		Order("bill_date DESC, created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&bills).Error
	return bills, total, err
}

func (r *billRepo) SumByDepartment(ctx context.Context, from, to time.Time) (map[model.Department]decimal.Decimal, error) {
	var rows []struct {
		Department model.Department
		Total      decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.DepartmentBill{}).
		Where("bill_date >= ? AND bill_date < ? AND status = ?", from, to, model.StatusActive).
		Select("department, SUM(amount) AS total").
		Group("department").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	sums := make(map[model.Department]decimal.Decimal, len(rows))
	for _, row := range rows {
		sums[row.Department] = row.Total
	}
	return sums, nil
}
