package service

import (
	"context"
	"testing"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/apperr"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type billingFixture struct {
	st       *memState
	doctors  *memDoctorRepo
	income   *memIncomeRepo
	patients *memPatientRepo
	billing  BillingService
}

func newBillingFixture() *billingFixture {
	st := newMemState()
	f := &billingFixture{
		st:       st,
		doctors:  &memDoctorRepo{st: st},
		income:   &memIncomeRepo{st: st},
		patients: &memPatientRepo{st: st},
	}
	f.billing = NewBillingService(
		&memTxRunner{st: st},
		&memBillRepo{st: st},
		f.patients,
		f.doctors,
		f.income,
	)
	return f
}

func (f *billingFixture) seedPatient(name string) *model.Patient {
	p := &model.Patient{Name: name, RegistrationNo: len(f.st.patients) + 1}
	_ = f.patients.Create(context.Background(), p)
	return p
}

func (f *billingFixture) seedDoctor(name, sharePct string) *model.Doctor {
	d := &model.Doctor{Name: name, SharePct: decimal.RequireFromString(sharePct), Active: true}
	_ = f.doctors.Create(context.Background(), d)
	return d
}

func TestCreateBill_WritesIncomeAndKhataCredit(t *testing.T) {
	f := newBillingFixture()
	patient := f.seedPatient("Ahmad Shah")
	doctor := f.seedDoctor("Dr. Karimi", "33.33")
	doctorID := doctor.ID.String()

	resp, err := f.billing.CreateBill(context.Background(), uuid.New(), dto.CreateBillRequest{
		PatientID:  patient.ID.String(),
		Department: "operation",
		Amount:     decimal.RequireFromString("1000.00"),
		DoctorID:   &doctorID,
		BillDate:   "2026-04-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ahmad Shah", resp.PatientName)
	assert.Equal(t, "Dr. Karimi", resp.DoctorName)
	// 1000 * 33.33% = 333.30, rounded to 2 decimals.
	assert.True(t, resp.DoctorShare.Equal(decimal.RequireFromString("333.30")),
		"got %s", resp.DoctorShare)

	require.Len(t, f.st.bills, 1)
	assert.Equal(t, model.StatusActive, f.st.bills[0].Status)

	require.Len(t, f.st.income, 1)
	assert.Equal(t, model.SourceDepartmentBill, f.st.income[0].Source)
	assert.True(t, f.st.income[0].Amount.Equal(decimal.RequireFromString("1000.00")))

	require.Len(t, f.st.khata, 1)
	assert.Equal(t, doctor.ID, f.st.khata[0].DoctorID)
	assert.True(t, f.st.khata[0].Amount.Equal(decimal.RequireFromString("333.30")))
}

func TestCreateBill_WithoutDoctorSkipsKhata(t *testing.T) {
	f := newBillingFixture()
	patient := f.seedPatient("Zahra")

	resp, err := f.billing.CreateBill(context.Background(), uuid.New(), dto.CreateBillRequest{
		PatientID:  patient.ID.String(),
		Department: "laboratory",
		Amount:     decimal.RequireFromString("250.00"),
		BillDate:   "2026-04-01",
	})
	require.NoError(t, err)
	assert.True(t, resp.DoctorShare.IsZero())
	assert.Empty(t, f.st.khata)
	assert.Len(t, f.st.income, 1)
}

func TestCreateBill_UnknownPatient(t *testing.T) {
	f := newBillingFixture()

	_, err := f.billing.CreateBill(context.Background(), uuid.New(), dto.CreateBillRequest{
		PatientID:  uuid.NewString(),
		Department: "opd",
		Amount:     decimal.RequireFromString("100.00"),
		BillDate:   "2026-04-01",
	})
	assert.ErrorIs(t, err, apperr.ItemNotFound(""))
	assert.Empty(t, f.st.bills)
}

func TestReverseBill_DebitsKhataInsteadOfDeleting(t *testing.T) {
	f := newBillingFixture()
	patient := f.seedPatient("Ahmad Shah")
	doctor := f.seedDoctor("Dr. Karimi", "40")
	doctorID := doctor.ID.String()

	resp, err := f.billing.CreateBill(context.Background(), uuid.New(), dto.CreateBillRequest{
		PatientID:  patient.ID.String(),
		Department: "operation",
		Amount:     decimal.RequireFromString("500.00"),
		DoctorID:   &doctorID,
		BillDate:   "2026-04-01",
	})
	require.NoError(t, err)
	billID := uuid.MustParse(resp.ID)

	require.NoError(t, f.billing.ReverseBill(context.Background(), billID))

	assert.Equal(t, model.StatusReversed, f.st.bills[0].Status)
	assert.Empty(t, f.st.income, "bill income entry removed")

	// The khata is append-only: the original credit stays, the reversal
	// adds an inverse debit, and the balance nets to zero.
	require.Len(t, f.st.khata, 2)
	assert.True(t, f.st.khata[0].Amount.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, f.st.khata[1].Amount.Equal(decimal.RequireFromString("-200.00")))

	balance, err := f.doctors.KhataBalance(context.Background(), doctor.ID)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestReverseBill_MirrorsOriginalCreditAfterShareChange(t *testing.T) {
	f := newBillingFixture()
	patient := f.seedPatient("Ahmad Shah")
	doctor := f.seedDoctor("Dr. Karimi", "10")
	doctorID := doctor.ID.String()

	resp, err := f.billing.CreateBill(context.Background(), uuid.New(), dto.CreateBillRequest{
		PatientID:  patient.ID.String(),
		Department: "operation",
		Amount:     decimal.RequireFromString("100.00"),
		DoctorID:   &doctorID,
		BillDate:   "2026-04-01",
	})
	require.NoError(t, err)
	require.Len(t, f.st.khata, 1)
	require.True(t, f.st.khata[0].Amount.Equal(decimal.RequireFromString("10.00")))

	// The doctor's share is renegotiated between billing and reversal.
	// The reversal must debit what was actually credited, not what the
	// new share would compute.
	newShare := decimal.RequireFromString("20")
	_, err = f.billing.UpdateDoctor(context.Background(), doctor.ID, dto.UpdateDoctorRequest{
		SharePct: &newShare,
	})
	require.NoError(t, err)

	require.NoError(t, f.billing.ReverseBill(context.Background(), uuid.MustParse(resp.ID)))

	require.Len(t, f.st.khata, 2)
	assert.True(t, f.st.khata[1].Amount.Equal(decimal.RequireFromString("-10.00")),
		"debit %s should mirror the recorded credit", f.st.khata[1].Amount)

	balance, err := f.doctors.KhataBalance(context.Background(), doctor.ID)
	require.NoError(t, err)
	assert.True(t, balance.IsZero(), "khata should net to zero, got %s", balance)
}

func TestUpdateDoctor_PatchesFields(t *testing.T) {
	f := newBillingFixture()
	doctor := f.seedDoctor("Dr. Karimi", "25")

	share := decimal.RequireFromString("30")
	updated, err := f.billing.UpdateDoctor(context.Background(), doctor.ID, dto.UpdateDoctorRequest{
		Phone:    "0700123456",
		SharePct: &share,
	})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Karimi", updated.Name)
	assert.Equal(t, "0700123456", updated.Phone)
	assert.True(t, updated.SharePct.Equal(share))
}

func TestDeactivateDoctor(t *testing.T) {
	f := newBillingFixture()
	doctor := f.seedDoctor("Dr. Karimi", "25")

	require.NoError(t, f.billing.DeactivateDoctor(context.Background(), doctor.ID))
	assert.False(t, f.st.doctors[0].Active)

	err := f.billing.DeactivateDoctor(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperr.ItemNotFound(""))
}

func TestReverseBill_SecondReversalConflicts(t *testing.T) {
	f := newBillingFixture()
	patient := f.seedPatient("Zahra")

	resp, err := f.billing.CreateBill(context.Background(), uuid.New(), dto.CreateBillRequest{
		PatientID:  patient.ID.String(),
		Department: "opd",
		Amount:     decimal.RequireFromString("100.00"),
		BillDate:   "2026-04-01",
	})
	require.NoError(t, err)
	billID := uuid.MustParse(resp.ID)

	require.NoError(t, f.billing.ReverseBill(context.Background(), billID))

	err = f.billing.ReverseBill(context.Background(), billID)
	assert.ErrorIs(t, err, apperr.AlreadyReversed(""))
}

func TestReverseBill_UnknownBill(t *testing.T) {
	f := newBillingFixture()
	err := f.billing.ReverseBill(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperr.ItemNotFound(""))
}

func TestGetKhata(t *testing.T) {
	f := newBillingFixture()
	doctor := f.seedDoctor("Dr. Karimi", "50")

	_ = f.doctors.CreateKhataEntryTx(nil, &model.KhataEntry{
		DoctorID: doctor.ID, Amount: decimal.RequireFromString("120.00"),
	})
	_ = f.doctors.CreateKhataEntryTx(nil, &model.KhataEntry{
		DoctorID: doctor.ID, Amount: decimal.RequireFromString("-20.00"),
	})

	khata, err := f.billing.GetKhata(context.Background(), doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Karimi", khata.DoctorName)
	assert.True(t, khata.Balance.Equal(decimal.RequireFromString("100.00")))
	assert.Len(t, khata.Entries, 2)
}
