package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateBillRequest struct {
	PatientID   string          `json:"patient_id" validate:"required,uuid"`
	Department  string          `json:"department" validate:"required,oneof=opd oct ultrasound operation laboratory perimetry fa prp bedroom glasses"`
	Amount      decimal.Decimal `json:"amount"     validate:"required"`
	DoctorID    *string         `json:"doctor_id"  validate:"omitempty,uuid"`
	Description string          `json:"description"`
	BillDate    string          `json:"bill_date"  validate:"required,datetime=2006-01-02"`
}

type CreateDoctorRequest struct {
	Name      string          `json:"name"      validate:"required,min=2,max=100"`
	Specialty string          `json:"specialty" validate:"max=100"`
	Phone     string          `json:"phone"     validate:"max=30"`
	SharePct  decimal.Decimal `json:"share_pct" validate:"min=0,max=100"`
}

type UpdateDoctorRequest struct {
	Name      string           `json:"name"      validate:"omitempty,min=2,max=100"`
	Specialty string           `json:"specialty" validate:"max=100"`
	Phone     string           `json:"phone"     validate:"max=30"`
	SharePct  *decimal.Decimal `json:"share_pct"`
}

// ─── Filter / List ──────────────────────────────────────────────────────────

type BillFilter struct {
	Department string     `form:"department" validate:"omitempty,oneof=opd oct ultrasound operation laboratory perimetry fa prp bedroom glasses"`
	PatientID  *uuid.UUID `form:"patient_id"`
	DoctorID   *uuid.UUID `form:"doctor_id"`
	Date       string     `form:"date"   validate:"omitempty,datetime=2006-01-02"`
	Status     string     `form:"status" validate:"omitempty,oneof=active reversed"`
	Page       int        `form:"page,default=1"   validate:"min=1"`
	Limit      int        `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type BillResponse struct {
	ID          string          `json:"id"`
	PatientID   string          `json:"patient_id"`
	PatientName string          `json:"patient_name"`
	Department  string          `json:"department"`
	Amount      decimal.Decimal `json:"amount"`
	DoctorID    *string         `json:"doctor_id"`
	DoctorName  string          `json:"doctor_name,omitempty"`
	DoctorShare decimal.Decimal `json:"doctor_share"`
	Description string          `json:"description"`
	BillDate    string          `json:"bill_date"`
	Status      string          `json:"status"`
}

type BillListResponse struct {
	Data  []BillResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type DoctorResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Specialty string          `json:"specialty"`
	Phone     string          `json:"phone"`
	SharePct  decimal.Decimal `json:"share_pct"`
	Active    bool            `json:"active"`
}

// KhataEntryResponse is one line of a doctor's running account.
type KhataEntryResponse struct {
	ID          string          `json:"id"`
	BillID      *string         `json:"bill_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   string          `json:"created_at"`
}

type KhataResponse struct {
	DoctorID   string               `json:"doctor_id"`
	DoctorName string               `json:"doctor_name"`
	Balance    decimal.Decimal      `json:"balance"`
	Entries    []KhataEntryResponse `json:"entries"`
}
