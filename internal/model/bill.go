package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Department is the finite set of billable clinic departments.
type Department string

const (
	DeptOPD        Department = "opd"
	DeptOCT        Department = "oct"
	DeptUltrasound Department = "ultrasound"
	DeptOperation  Department = "operation"
	DeptLaboratory Department = "laboratory"
	DeptPerimetry  Department = "perimetry"
	DeptFA         Department = "fa"
	DeptPRP        Department = "prp"
	DeptBedroom    Department = "bedroom"
	DeptGlasses    Department = "glasses"
)

// AllDepartments lists every billable department, in report order.
func AllDepartments() []Department {
	return []Department{
		DeptOPD, DeptOCT, DeptUltrasound, DeptOperation, DeptLaboratory,
		DeptPerimetry, DeptFA, DeptPRP, DeptBedroom, DeptGlasses,
	}
}

// IsValid reports whether d is a known department.
func (d Department) IsValid() bool {
	for _, known := range AllDepartments() {
		if d == known {
			return true
		}
	}
	return false
}

// DepartmentBill is a charge raised against a patient by one department.
// Recording a bill creates its IncomeEntry and, when a doctor is attached,
// the doctor's khata credit — all in one transaction. Deleting a bill is an
// explicit reversal that unwinds both.
type DepartmentBill struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PatientID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Department Department `gorm:"type:varchar(20);not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// DoctorID is set when the department splits revenue with a doctor.
	DoctorID    *uuid.UUID `gorm:"type:uuid;index"`
	Description string
	BillDate    time.Time    `gorm:"not null;index"`
	Status      RecordStatus `gorm:"type:varchar(20);not null;default:'active'"`
	ActorID     uuid.UUID    `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Patient *Patient `gorm:"foreignKey:PatientID"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID"`
}

// TableName overrides GORM's default (department_bills).
func (DepartmentBill) TableName() string { return "department_bills" }
