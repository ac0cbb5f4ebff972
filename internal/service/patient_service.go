package service

import (
	"context"
	"time"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/apperr"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/repository"

	"github.com/google/uuid"
)

type PatientService interface {
	Register(ctx context.Context, req dto.CreatePatientRequest) (*dto.PatientResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	List(ctx context.Context, filter dto.PatientFilter) (*dto.PatientListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdatePatientRequest) (*dto.PatientResponse, error)
}

type patientService struct {
	repo repository.PatientRepository
}

func NewPatientService(repo repository.PatientRepository) PatientService {
	return &patientService{repo: repo}
}

func (s *patientService) Register(ctx context.Context, req dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	regNo, err := s.repo.NextRegistrationNo(ctx)
	if err != nil {
		return nil, err
	}
	p := &model.Patient{
		RegistrationNo: regNo,
		Name:           req.Name,
		FatherName:     req.FatherName,
		Age:            req.Age,
		Gender:         req.Gender,
		Phone:          req.Phone,
		Address:        req.Address,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return patientToResponse(p), nil
}

func (s *patientService) Get(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.ItemNotFound(id.String())
	}
	return patientToResponse(p), nil
}

func (s *patientService) List(ctx context.Context, filter dto.PatientFilter) (*dto.PatientListResponse, error) {
	patients, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		data = append(data, *patientToResponse(&patients[i]))
	}
	return &dto.PatientListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *patientService) Update(ctx context.Context, id uuid.UUID, req dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.ItemNotFound(id.String())
	}
	if req.Name != "" {
		p.Name = req.Name
	}
	if req.FatherName != "" {
		p.FatherName = req.FatherName
	}
	if req.Age != nil {
		p.Age = *req.Age
	}
	if req.Gender != "" {
		p.Gender = req.Gender
	}
	if req.Phone != "" {
		p.Phone = req.Phone
	}
	if req.Address != "" {
		p.Address = req.Address
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return patientToResponse(p), nil
}

func patientToResponse(p *model.Patient) *dto.PatientResponse {
	return &dto.PatientResponse{
		ID:             p.ID.String(),
		RegistrationNo: p.RegistrationNo,
		Name:           p.Name,
		FatherName:     p.FatherName,
		Age:            p.Age,
		Gender:         p.Gender,
		Phone:          p.Phone,
		Address:        p.Address,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
}
