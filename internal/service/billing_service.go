package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/apperr"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BillingService records per-department charges. A bill, its income entry
// and the doctor's khata credit commit in one transaction; deleting a bill
// is the explicit reversal that unwinds all three — there are no implicit
// cascade hooks.
type BillingService interface {
	CreateBill(ctx context.Context, actorID uuid.UUID, req dto.CreateBillRequest) (*dto.BillResponse, error)
	ReverseBill(ctx context.Context, id uuid.UUID) error
	ListBills(ctx context.Context, filter dto.BillFilter) (*dto.BillListResponse, error)

	CreateDoctor(ctx context.Context, d *model.Doctor) error
	ListDoctors(ctx context.Context) ([]model.Doctor, error)
	UpdateDoctor(ctx context.Context, id uuid.UUID, req dto.UpdateDoctorRequest) (*model.Doctor, error)
	DeactivateDoctor(ctx context.Context, id uuid.UUID) error
	GetKhata(ctx context.Context, doctorID uuid.UUID) (*dto.KhataResponse, error)
}

type billingService struct {
	txr      repository.TxRunner
	bills    repository.BillRepository
	patients repository.PatientRepository
	doctors  repository.DoctorRepository
	income   repository.IncomeRepository
}

func NewBillingService(
	txr repository.TxRunner,
	bills repository.BillRepository,
	patients repository.PatientRepository,
	doctors repository.DoctorRepository,
	income repository.IncomeRepository,
) BillingService {
	return &billingService{
		txr:      txr,
		bills:    bills,
		patients: patients,
		doctors:  doctors,
		income:   income,
	}
}

// ── CreateBill ────────────────────────────────────────────────────────────────

func (s *billingService) CreateBill(ctx context.Context, actorID uuid.UUID, req dto.CreateBillRequest) (*dto.BillResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, apperr.InvalidQuantity(0)
	}
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, fmt.Errorf("invalid patient_id: %w", err)
	}
	billDate, err := time.Parse("2006-01-02", req.BillDate)
	if err != nil {
		return nil, fmt.Errorf("invalid bill_date: %w", err)
	}

	patient, err := s.patients.FindByID(ctx, patientID)
	if err != nil {
		return nil, apperr.ItemNotFound(req.PatientID)
	}

	var doctor *model.Doctor
	var doctorID *uuid.UUID
	if req.DoctorID != nil {
		id, err := uuid.Parse(*req.DoctorID)
		if err != nil {
			return nil, fmt.Errorf("invalid doctor_id: %w", err)
		}
		doctor, err = s.doctors.FindByID(ctx, id)
		if err != nil {
			return nil, apperr.ItemNotFound(*req.DoctorID)
		}
		doctorID = &id
	}

	dept := model.Department(req.Department)
	bill := &model.DepartmentBill{
		PatientID:   patientID,
		Department:  dept,
		Amount:      req.Amount,
		DoctorID:    doctorID,
		Description: req.Description,
		BillDate:    billDate,
		Status:      model.StatusActive,
		ActorID:     actorID,
	}

	doctorShare := decimal.Zero
	txErr := s.txr.InTx(ctx, func(tx *gorm.DB) error {
		if err := s.bills.CreateTx(tx, bill); err != nil {
			return err
		}

		entry := &model.IncomeEntry{
			Source:      model.SourceDepartmentBill,
			SourceRef:   bill.ID,
			Amount:      req.Amount,
			Category:    string(dept),
			Description: fmt.Sprintf("%s bill for %s", dept, patient.Name),
			Date:        billDate,
		}
		if err := s.income.CreateTx(tx, entry); err != nil {
			return err
		}

		if doctor != nil && doctor.SharePct.IsPositive() {
			doctorShare = req.Amount.Mul(doctor.SharePct).Div(decimal.NewFromInt(100)).Round(2)
			billID := bill.ID
			khata := &model.KhataEntry{
				DoctorID:    doctor.ID,
				BillID:      &billID,
				Amount:      doctorShare,
				Description: fmt.Sprintf("Share of %s bill for %s", dept, patient.Name),
			}
			if err := s.doctors.CreateKhataEntryTx(tx, khata); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := billToResponse(bill)
	resp.PatientName = patient.Name
	resp.DoctorShare = doctorShare
	if doctor != nil {
		resp.DoctorName = doctor.Name
	}
	return resp, nil
}

// ── ReverseBill ───────────────────────────────────────────────────────────────
// The khata is append-only, so the reversal debits the doctor with an
// inverse entry instead of deleting the original credit.

func (s *billingService) ReverseBill(ctx context.Context, id uuid.UUID) error {
	bill, err := s.bills.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ItemNotFound(id.String())
		}
		return err
	}

	return s.txr.InTx(ctx, func(tx *gorm.DB) error {
		rows, err := s.bills.MarkReversedTx(tx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperr.AlreadyReversed(id.String())
		}

		if err := s.income.DeleteBySourceTx(tx, model.SourceDepartmentBill, id); err != nil {
			return err
		}

		// Debit exactly what the bill credited. The doctor's share may
		// have changed since, so the recorded entry is the source of
		// truth, not a recomputation.
		credit, err := s.doctors.KhataCreditForBillTx(tx, bill.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // no doctor attached, or share was zero
			}
			return err
		}
		billID := bill.ID
		khata := &model.KhataEntry{
			DoctorID:    credit.DoctorID,
			BillID:      &billID,
			Amount:      credit.Amount.Neg(),
			Description: fmt.Sprintf("Reversal of %s bill", bill.Department),
		}
		return s.doctors.CreateKhataEntryTx(tx, khata)
	})
}

// ── Listings ──────────────────────────────────────────────────────────────────

func (s *billingService) ListBills(ctx context.Context, filter dto.BillFilter) (*dto.BillListResponse, error) {
	bills, total, err := s.bills.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.BillResponse, 0, len(bills))
	for i := range bills {
		row := billToResponse(&bills[i])
		if bills[i].Patient != nil {
			row.PatientName = bills[i].Patient.Name
		}
		if bills[i].Doctor != nil {
			row.DoctorName = bills[i].Doctor.Name
			row.DoctorShare = bills[i].Amount.Mul(bills[i].Doctor.SharePct).Div(decimal.NewFromInt(100)).Round(2)
		}
		data = append(data, *row)
	}
	return &dto.BillListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *billingService) CreateDoctor(ctx context.Context, d *model.Doctor) error {
	return s.doctors.Create(ctx, d)
}

func (s *billingService) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	return s.doctors.List(ctx)
}

// UpdateDoctor changes master data (including SharePct). Khata entries
// already written keep the share in force when their bill was recorded.
func (s *billingService) UpdateDoctor(ctx context.Context, id uuid.UUID, req dto.UpdateDoctorRequest) (*model.Doctor, error) {
	doctor, err := s.doctors.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.ItemNotFound(id.String())
	}
	if req.Name != "" {
		doctor.Name = req.Name
	}
	if req.Specialty != "" {
		doctor.Specialty = req.Specialty
	}
	if req.Phone != "" {
		doctor.Phone = req.Phone
	}
	if req.SharePct != nil {
		doctor.SharePct = *req.SharePct
	}
	if err := s.doctors.Update(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *billingService) DeactivateDoctor(ctx context.Context, id uuid.UUID) error {
	if _, err := s.doctors.FindByID(ctx, id); err != nil {
		return apperr.ItemNotFound(id.String())
	}
	return s.doctors.Deactivate(ctx, id)
}

func (s *billingService) GetKhata(ctx context.Context, doctorID uuid.UUID) (*dto.KhataResponse, error) {
	doctor, err := s.doctors.FindByID(ctx, doctorID)
	if err != nil {
		return nil, apperr.ItemNotFound(doctorID.String())
	}
	balance, err := s.doctors.KhataBalance(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	entries, err := s.doctors.ListKhata(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	resp := &dto.KhataResponse{
		DoctorID:   doctor.ID.String(),
		DoctorName: doctor.Name,
		Balance:    balance,
	}
	for _, e := range entries {
		row := dto.KhataEntryResponse{
			ID:          e.ID.String(),
			Amount:      e.Amount,
			Description: e.Description,
			CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		}
		if e.BillID != nil {
			id := e.BillID.String()
			row.BillID = &id
		}
		resp.Entries = append(resp.Entries, row)
	}
	return resp, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func billToResponse(b *model.DepartmentBill) *dto.BillResponse {
	resp := &dto.BillResponse{
		ID:          b.ID.String(),
		PatientID:   b.PatientID.String(),
		Department:  string(b.Department),
		Amount:      b.Amount,
		Description: b.Description,
		BillDate:    b.BillDate.Format("2006-01-02"),
		Status:      string(b.Status),
		DoctorShare: decimal.Zero,
	}
	if b.DoctorID != nil {
		id := b.DoctorID.String()
		resp.DoctorID = &id
	}
	return resp
}
