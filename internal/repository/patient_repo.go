package repository

import (
	"context"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, p *model.Patient) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	FindByRegistrationNo(ctx context.Context, regNo int) (*model.Patient, error)
	List(ctx context.Context, filter dto.PatientFilter) ([]model.Patient, int64, error)
	Update(ctx context.Context, p *model.Patient) error
	NextRegistrationNo(ctx context.Context) (int, error)
}

type patientRepo struct{ db *gorm.DB }

func NewPatientRepository(db *gorm.DB) PatientRepository { return &patientRepo{db: db} }

func (r *patientRepo) Create(ctx context.Context, p *model.Patient) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *patientRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	var p model.Patient
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *patientRepo) FindByRegistrationNo(ctx context.Context, regNo int) (*model.Patient, error) {
	var p model.Patient
	err := r.db.WithContext(ctx).Where("registration_no = ?", regNo).First(&p).Error
	return &p, err
}

func (r *patientRepo) List(ctx context.Context, filter dto.PatientFilter) ([]model.Patient, int64, error) {
	var patients []model.Patient
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Patient{})
	if filter.Name != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Phone != "" {
		q = q.Where("phone = ?", filter.Phone)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	err := q.Order("registration_no DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&patients).Error
	return patients, total, err
}

func (r *patientRepo) Update(ctx context.Context, p *model.Patient) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *patientRepo) NextRegistrationNo(ctx context.Context) (int, error) {
	// Uses a PostgreSQL sequence for atomic registration number generation
	var num int
	err := r.db.WithContext(ctx).Raw("SELECT nextval('patients_registration_no_seq')").Scan(&num).Error
	return num, err
}
