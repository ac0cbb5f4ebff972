package service

// stubs_test.go — in-memory repository doubles for the service tests.
// All state lives in one memState; the stub TxRunner snapshots it before
// running the transactional closure and restores it on error, so tests can
// assert real all-or-nothing behavior without a database. The stubs mirror
// the SQL guards: conditional updates report zero rows instead of going
// negative.

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type memState struct {
	items      []model.Item
	stock      []model.StockRecord
	batches    []model.PurchaseBatch
	movements  []model.MovementRecord
	sales      []model.SaleRecord
	income     []model.IncomeEntry
	ledger     model.SalesTotalLedger
	logEntries []model.SalesLogEntry
	patients   []model.Patient
	doctors    []model.Doctor
	khata      []model.KhataEntry
	bills      []model.DepartmentBill
}

func newMemState() *memState {
	return &memState{
		ledger: model.SalesTotalLedger{Key: model.SalesTotalLedgerKey, Balance: decimal.Zero},
	}
}

func (s *memState) clone() *memState {
	c := &memState{ledger: s.ledger}
	c.items = append([]model.Item(nil), s.items...)
	c.stock = append([]model.StockRecord(nil), s.stock...)
	c.batches = append([]model.PurchaseBatch(nil), s.batches...)
	c.movements = append([]model.MovementRecord(nil), s.movements...)
	c.sales = append([]model.SaleRecord(nil), s.sales...)
	c.income = append([]model.IncomeEntry(nil), s.income...)
	c.logEntries = append([]model.SalesLogEntry(nil), s.logEntries...)
	c.patients = append([]model.Patient(nil), s.patients...)
	c.doctors = append([]model.Doctor(nil), s.doctors...)
	c.khata = append([]model.KhataEntry(nil), s.khata...)
	c.bills = append([]model.DepartmentBill(nil), s.bills...)
	return c
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

type memTxRunner struct{ st *memState }

func (r *memTxRunner) InTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	snapshot := r.st.clone()
	if err := fn(nil); err != nil {
		*r.st = *snapshot
		return err
	}
	return nil
}

// ── ItemRepository ────────────────────────────────────────────────────────────

type memItemRepo struct{ st *memState }

func (r *memItemRepo) Create(_ context.Context, i *model.Item) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	i.CreatedAt = time.Now()
	r.st.items = append(r.st.items, *i)
	return nil
}

func (r *memItemRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Item, error) {
	for i := range r.st.items {
		if r.st.items[i].ID == id {
			item := r.st.items[i]
			return &item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memItemRepo) FindByNameManufacturer(_ context.Context, name, manufacturer string) (*model.Item, error) {
	for i := range r.st.items {
		if r.st.items[i].Name == name && r.st.items[i].Manufacturer == manufacturer {
			item := r.st.items[i]
			return &item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memItemRepo) List(_ context.Context, filter dto.ItemFilter) ([]model.Item, int64, error) {
	var out []model.Item
	for _, it := range r.st.items {
		if filter.Name != "" && !strings.Contains(strings.ToLower(it.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Category != "" && string(it.Category) != filter.Category {
			continue
		}
		out = append(out, it)
	}
	return out, int64(len(out)), nil
}

func (r *memItemRepo) Update(_ context.Context, i *model.Item) error {
	for idx := range r.st.items {
		if r.st.items[idx].ID == i.ID {
			r.st.items[idx] = *i
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memItemRepo) ListBelowMinimum(_ context.Context) ([]dto.LowStockItem, error) {
	var out []dto.LowStockItem
	for _, it := range r.st.items {
		onHand := 0
		for _, s := range r.st.stock {
			if s.ItemID == it.ID {
				onHand += s.Quantity
			}
		}
		if onHand < it.MinimumLevel {
			out = append(out, dto.LowStockItem{
				ItemID: it.ID, Name: it.Name, Manufacturer: it.Manufacturer,
				MinimumLevel: it.MinimumLevel, OnHand: onHand,
			})
		}
	}
	return out, nil
}

// ── StockRepository ───────────────────────────────────────────────────────────

type memStockRepo struct{ st *memState }

func (r *memStockRepo) find(itemID uuid.UUID, loc model.Location) int {
	for i := range r.st.stock {
		if r.st.stock[i].ItemID == itemID && r.st.stock[i].Location == loc {
			return i
		}
	}
	return -1
}

func (r *memStockRepo) Find(_ context.Context, itemID uuid.UUID, loc model.Location) (*model.StockRecord, error) {
	if i := r.find(itemID, loc); i >= 0 {
		rec := r.st.stock[i]
		return &rec, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memStockRepo) FindTx(_ *gorm.DB, itemID uuid.UUID, loc model.Location) (*model.StockRecord, error) {
	if i := r.find(itemID, loc); i >= 0 {
		rec := r.st.stock[i]
		return &rec, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memStockRepo) CreateTx(_ *gorm.DB, s *model.StockRecord) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.st.stock = append(r.st.stock, *s)
	return nil
}

func (r *memStockRepo) AdjustTx(_ *gorm.DB, itemID uuid.UUID, loc model.Location, delta int) (int64, error) {
	i := r.find(itemID, loc)
	if i < 0 || r.st.stock[i].Quantity+delta < 0 {
		return 0, nil
	}
	r.st.stock[i].Quantity += delta
	return 1, nil
}

func (r *memStockRepo) UpdatePriceTx(_ *gorm.DB, itemID uuid.UUID, loc model.Location, price decimal.Decimal) error {
	if i := r.find(itemID, loc); i >= 0 {
		r.st.stock[i].UnitSalePrice = price
	}
	return nil
}

func (r *memStockRepo) List(_ context.Context, loc model.Location, _ dto.StockFilter) ([]model.StockRecord, int64, error) {
	var out []model.StockRecord
	for _, s := range r.st.stock {
		if s.Location == loc {
			out = append(out, s)
		}
	}
	return out, int64(len(out)), nil
}

// ── BatchRepository ───────────────────────────────────────────────────────────

type memBatchRepo struct{ st *memState }

func (r *memBatchRepo) Create(_ context.Context, b *model.PurchaseBatch) error {
	return r.CreateTx(nil, b)
}

func (r *memBatchRepo) CreateTx(_ *gorm.DB, b *model.PurchaseBatch) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	r.st.batches = append(r.st.batches, *b)
	return nil
}

func (r *memBatchRepo) FindByID(_ context.Context, id uuid.UUID) (*model.PurchaseBatch, error) {
	for i := range r.st.batches {
		if r.st.batches[i].ID == id {
			b := r.st.batches[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memBatchRepo) NextAvailableTx(_ *gorm.DB, itemID uuid.UUID) (*model.PurchaseBatch, error) {
	var candidates []model.PurchaseBatch
	for _, b := range r.st.batches {
		if b.ItemID == itemID && b.QuantityRemaining > 0 {
			candidates = append(candidates, b)
		}
	}
	if len(candidates) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].PurchaseDate.Equal(candidates[j].PurchaseDate) {
			return candidates[i].PurchaseDate.Before(candidates[j].PurchaseDate)
		}
		if !candidates[i].CreatedAt.Equal(candidates[j].CreatedAt) {
			return candidates[i].CreatedAt.Before(candidates[j].CreatedAt)
		}
		return candidates[i].ID.String() < candidates[j].ID.String()
	})
	b := candidates[0]
	return &b, nil
}

func (r *memBatchRepo) ConsumeTx(_ *gorm.DB, batchID uuid.UUID, qty int) (int64, error) {
	for i := range r.st.batches {
		if r.st.batches[i].ID == batchID && r.st.batches[i].QuantityRemaining >= qty {
			r.st.batches[i].QuantityRemaining -= qty
			return 1, nil
		}
	}
	return 0, nil
}

func (r *memBatchRepo) RestoreTx(_ *gorm.DB, batchID uuid.UUID, qty int) (*model.PurchaseBatch, error) {
	for i := range r.st.batches {
		if r.st.batches[i].ID == batchID {
			r.st.batches[i].QuantityRemaining += qty
			b := r.st.batches[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memBatchRepo) CapRemainingTx(_ *gorm.DB, batchID uuid.UUID) error {
	for i := range r.st.batches {
		if r.st.batches[i].ID == batchID && r.st.batches[i].QuantityRemaining > r.st.batches[i].QuantityPurchased {
			r.st.batches[i].QuantityRemaining = r.st.batches[i].QuantityPurchased
		}
	}
	return nil
}

func (r *memBatchRepo) SumRemaining(_ context.Context, itemID uuid.UUID) (int, error) {
	sum := 0
	for _, b := range r.st.batches {
		if b.ItemID == itemID {
			sum += b.QuantityRemaining
		}
	}
	return sum, nil
}

func (r *memBatchRepo) ListByItem(_ context.Context, itemID uuid.UUID) ([]model.PurchaseBatch, error) {
	var out []model.PurchaseBatch
	for _, b := range r.st.batches {
		if b.ItemID == itemID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBatchRepo) ListExpiringWithin(_ context.Context, _ time.Time) ([]model.PurchaseBatch, error) {
	return nil, nil
}

// ── MovementRepository ────────────────────────────────────────────────────────

type memMovementRepo struct{ st *memState }

func (r *memMovementRepo) CreateTx(_ *gorm.DB, m *model.MovementRecord) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = model.StatusActive
	}
	m.CreatedAt = time.Now()
	r.st.movements = append(r.st.movements, *m)
	return nil
}

func (r *memMovementRepo) FindGroup(_ context.Context, groupID uuid.UUID) ([]model.MovementRecord, error) {
	var out []model.MovementRecord
	for _, m := range r.st.movements {
		if m.TransferGroupID == groupID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMovementRepo) MarkGroupReversedTx(_ *gorm.DB, groupID uuid.UUID) (int64, error) {
	var n int64
	for i := range r.st.movements {
		if r.st.movements[i].TransferGroupID == groupID && r.st.movements[i].Status == model.StatusActive {
			r.st.movements[i].Status = model.StatusReversed
			n++
		}
	}
	return n, nil
}

func (r *memMovementRepo) List(_ context.Context, _ dto.MovementFilter) ([]model.MovementRecord, int64, error) {
	return r.st.movements, int64(len(r.st.movements)), nil
}

// ── SaleRepository ────────────────────────────────────────────────────────────

type memSaleRepo struct{ st *memState }

func (r *memSaleRepo) CreateTx(_ *gorm.DB, s *model.SaleRecord) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Status == "" {
		s.Status = model.StatusActive
	}
	s.CreatedAt = time.Now()
	r.st.sales = append(r.st.sales, *s)
	return nil
}

func (r *memSaleRepo) FindGroup(_ context.Context, groupID uuid.UUID) ([]model.SaleRecord, error) {
	var out []model.SaleRecord
	for _, s := range r.st.sales {
		if s.SaleGroupID == groupID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memSaleRepo) MarkGroupReversedTx(_ *gorm.DB, groupID uuid.UUID) (int64, error) {
	var n int64
	for i := range r.st.sales {
		if r.st.sales[i].SaleGroupID == groupID && r.st.sales[i].Status == model.StatusActive {
			r.st.sales[i].Status = model.StatusReversed
			n++
		}
	}
	return n, nil
}

func (r *memSaleRepo) List(_ context.Context, _ dto.SaleFilter) ([]model.SaleRecord, int64, error) {
	return r.st.sales, int64(len(r.st.sales)), nil
}

// ── IncomeRepository ──────────────────────────────────────────────────────────

type memIncomeRepo struct{ st *memState }

func (r *memIncomeRepo) CreateTx(_ *gorm.DB, e *model.IncomeEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.st.income = append(r.st.income, *e)
	return nil
}

func (r *memIncomeRepo) DeleteBySourceTx(_ *gorm.DB, source model.IncomeSource, ref uuid.UUID) error {
	kept := r.st.income[:0]
	for _, e := range r.st.income {
		if !(e.Source == source && e.SourceRef == ref) {
			kept = append(kept, e)
		}
	}
	r.st.income = kept
	return nil
}

func (r *memIncomeRepo) ListByPeriod(_ context.Context, from, to time.Time) ([]model.IncomeEntry, error) {
	var out []model.IncomeEntry
	for _, e := range r.st.income {
		if !e.Date.Before(from) && e.Date.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memIncomeRepo) SumByPeriod(_ context.Context, from, to time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, e := range r.st.income {
		if !e.Date.Before(from) && e.Date.Before(to) {
			sum = sum.Add(e.Amount)
		}
	}
	return sum, nil
}

func (r *memIncomeRepo) SumByCategory(_ context.Context, from, to time.Time) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal)
	for _, e := range r.st.income {
		if !e.Date.Before(from) && e.Date.Before(to) {
			out[e.Category] = out[e.Category].Add(e.Amount)
		}
	}
	return out, nil
}

// ── LedgerRepository ──────────────────────────────────────────────────────────

type memLedgerRepo struct{ st *memState }

func (r *memLedgerRepo) Get(_ context.Context) (*model.SalesTotalLedger, error) {
	l := r.st.ledger
	return &l, nil
}

func (r *memLedgerRepo) EnsureExists(_ context.Context) error { return nil }

func (r *memLedgerRepo) IncrementTx(_ *gorm.DB, amount decimal.Decimal) error {
	r.st.ledger.Balance = r.st.ledger.Balance.Add(amount)
	return nil
}

func (r *memLedgerRepo) DecrementTx(_ *gorm.DB, amount decimal.Decimal) (int64, error) {
	if r.st.ledger.Balance.LessThan(amount) {
		return 0, nil
	}
	r.st.ledger.Balance = r.st.ledger.Balance.Sub(amount)
	return 1, nil
}

func (r *memLedgerRepo) DecrementClampedTx(_ *gorm.DB, amount decimal.Decimal) error {
	b := r.st.ledger.Balance.Sub(amount)
	if b.IsNegative() {
		b = decimal.Zero
	}
	r.st.ledger.Balance = b
	return nil
}

func (r *memLedgerRepo) CreateLogEntryTx(_ *gorm.DB, e *model.SalesLogEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = time.Now()
	r.st.logEntries = append(r.st.logEntries, *e)
	return nil
}

func (r *memLedgerRepo) ListLogEntries(_ context.Context, _ int) ([]model.SalesLogEntry, error) {
	return r.st.logEntries, nil
}

// ── BillRepository ────────────────────────────────────────────────────────────

type memBillRepo struct{ st *memState }

func (r *memBillRepo) CreateTx(_ *gorm.DB, b *model.DepartmentBill) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = model.StatusActive
	}
	r.st.bills = append(r.st.bills, *b)
	return nil
}

func (r *memBillRepo) FindByID(_ context.Context, id uuid.UUID) (*model.DepartmentBill, error) {
	for i := range r.st.bills {
		if r.st.bills[i].ID == id {
			b := r.st.bills[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memBillRepo) MarkReversedTx(_ *gorm.DB, id uuid.UUID) (int64, error) {
	for i := range r.st.bills {
		if r.st.bills[i].ID == id && r.st.bills[i].Status == model.StatusActive {
			r.st.bills[i].Status = model.StatusReversed
			return 1, nil
		}
	}
	return 0, nil
}

func (r *memBillRepo) List(_ context.Context, _ dto.BillFilter) ([]model.DepartmentBill, int64, error) {
	return r.st.bills, int64(len(r.st.bills)), nil
}

func (r *memBillRepo) SumByDepartment(_ context.Context, from, to time.Time) (map[model.Department]decimal.Decimal, error) {
	out := make(map[model.Department]decimal.Decimal)
	for _, b := range r.st.bills {
		if b.Status != model.StatusActive {
			continue
		}
		if !b.BillDate.Before(from) && b.BillDate.Before(to) {
			out[b.Department] = out[b.Department].Add(b.Amount)
		}
	}
	return out, nil
}

// ── DoctorRepository ──────────────────────────────────────────────────────────

type memDoctorRepo struct{ st *memState }

func (r *memDoctorRepo) Create(_ context.Context, d *model.Doctor) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.st.doctors = append(r.st.doctors, *d)
	return nil
}

func (r *memDoctorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Doctor, error) {
	for i := range r.st.doctors {
		if r.st.doctors[i].ID == id {
			d := r.st.doctors[i]
			return &d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memDoctorRepo) List(_ context.Context) ([]model.Doctor, error) {
	return r.st.doctors, nil
}

func (r *memDoctorRepo) Update(_ context.Context, d *model.Doctor) error {
	for i := range r.st.doctors {
		if r.st.doctors[i].ID == d.ID {
			r.st.doctors[i] = *d
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memDoctorRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	for i := range r.st.doctors {
		if r.st.doctors[i].ID == id {
			r.st.doctors[i].Active = false
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memDoctorRepo) CreateKhataEntryTx(_ *gorm.DB, e *model.KhataEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = time.Now()
	r.st.khata = append(r.st.khata, *e)
	return nil
}

func (r *memDoctorRepo) KhataCreditForBillTx(_ *gorm.DB, billID uuid.UUID) (*model.KhataEntry, error) {
	for i := range r.st.khata {
		e := r.st.khata[i]
		if e.BillID != nil && *e.BillID == billID && e.Amount.IsPositive() {
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memDoctorRepo) KhataBalance(_ context.Context, doctorID uuid.UUID) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, e := range r.st.khata {
		if e.DoctorID == doctorID {
			sum = sum.Add(e.Amount)
		}
	}
	return sum, nil
}

func (r *memDoctorRepo) ListKhata(_ context.Context, doctorID uuid.UUID) ([]model.KhataEntry, error) {
	var out []model.KhataEntry
	for _, e := range r.st.khata {
		if e.DoctorID == doctorID {
			out = append(out, e)
		}
	}
	return out, nil
}

// ── PatientRepository ─────────────────────────────────────────────────────────

type memPatientRepo struct {
	st    *memState
	nextN int
}

func (r *memPatientRepo) Create(_ context.Context, p *model.Patient) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.st.patients = append(r.st.patients, *p)
	return nil
}

func (r *memPatientRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Patient, error) {
	for i := range r.st.patients {
		if r.st.patients[i].ID == id {
			p := r.st.patients[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memPatientRepo) FindByRegistrationNo(_ context.Context, regNo int) (*model.Patient, error) {
	for i := range r.st.patients {
		if r.st.patients[i].RegistrationNo == regNo {
			p := r.st.patients[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memPatientRepo) List(_ context.Context, _ dto.PatientFilter) ([]model.Patient, int64, error) {
	return r.st.patients, int64(len(r.st.patients)), nil
}

func (r *memPatientRepo) Update(_ context.Context, p *model.Patient) error {
	for i := range r.st.patients {
		if r.st.patients[i].ID == p.ID {
			r.st.patients[i] = *p
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memPatientRepo) NextRegistrationNo(_ context.Context) (int, error) {
	r.nextN++
	return r.nextN, nil
}

// ── Test fixture ──────────────────────────────────────────────────────────────

// engineFixture bundles the stub repos plus the services under test against
// one shared memState.
type engineFixture struct {
	st        *memState
	txr       repository.TxRunner
	items     *memItemRepo
	stock     *memStockRepo
	batches   *memBatchRepo
	movements *memMovementRepo
	sales     *memSaleRepo
	income    *memIncomeRepo
	ledger    *memLedgerRepo

	inventory InventoryService
	pharmacy  PharmacyService
	ledgerSvc LedgerService
}

func newEngineFixture() *engineFixture {
	st := newMemState()
	f := &engineFixture{
		st:        st,
		txr:       &memTxRunner{st: st},
		items:     &memItemRepo{st: st},
		stock:     &memStockRepo{st: st},
		batches:   &memBatchRepo{st: st},
		movements: &memMovementRepo{st: st},
		sales:     &memSaleRepo{st: st},
		income:    &memIncomeRepo{st: st},
		ledger:    &memLedgerRepo{st: st},
	}
	f.inventory = NewInventoryService(f.txr, f.items, f.stock, f.batches, f.movements)
	f.pharmacy = NewPharmacyService(f.txr, f.items, f.stock, f.batches, f.sales, f.income, f.ledger)
	f.ledgerSvc = NewLedgerService(f.txr, f.ledger)
	return f
}

// seedItem creates an item plus an inventory stock record and batches.
// Each batch spec is {quantity, unitCost, daysAgo}.
func (f *engineFixture) seedItem(name string, batchSpecs ...struct {
	Qty     int
	Cost    string
	DaysAgo int
}) *model.Item {
	item := &model.Item{Name: name, Manufacturer: "Acme", Category: model.CategoryDrug}
	_ = f.items.Create(context.Background(), item)

	total := 0
	for _, spec := range batchSpecs {
		b := &model.PurchaseBatch{
			ItemID:            item.ID,
			PurchaseDate:      time.Now().AddDate(0, 0, -spec.DaysAgo),
			QuantityPurchased: spec.Qty,
			QuantityRemaining: spec.Qty,
			UnitCost:          decimal.RequireFromString(spec.Cost),
		}
		_ = f.batches.Create(context.Background(), b)
		total += spec.Qty
	}

	_ = f.stock.CreateTx(nil, &model.StockRecord{
		ItemID: item.ID, Location: model.LocationInventory, Quantity: total,
	})
	return item
}

type batchSpec = struct {
	Qty     int
	Cost    string
	DaysAgo int
}
