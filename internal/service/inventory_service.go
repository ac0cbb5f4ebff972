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

// InventoryService owns stock intake and the inventory → pharmacy transfer
// operation, including its reversal.
type InventoryService interface {
	PurchaseIntake(ctx context.Context, actorID uuid.UUID, req dto.PurchaseIntakeRequest) (*dto.BatchResponse, error)
	Transfer(ctx context.Context, actorID uuid.UUID, req dto.TransferRequest) (*dto.TransferResponse, error)
	ReverseTransfer(ctx context.Context, groupID uuid.UUID) error
	ListStock(ctx context.Context, loc model.Location, filter dto.StockFilter) (*dto.StockListResponse, error)
	ListMovements(ctx context.Context, filter dto.MovementFilter) (*dto.MovementListResponse, error)
	ListBatches(ctx context.Context, itemID uuid.UUID) ([]dto.BatchResponse, error)
}

type inventoryService struct {
	txr       repository.TxRunner
	items     repository.ItemRepository
	stock     repository.StockRepository
	batches   repository.BatchRepository
	movements repository.MovementRepository
}

func NewInventoryService(
	txr repository.TxRunner,
	items repository.ItemRepository,
	stock repository.StockRepository,
	batches repository.BatchRepository,
	movements repository.MovementRepository,
) InventoryService {
	return &inventoryService{
		txr:       txr,
		items:     items,
		stock:     stock,
		batches:   batches,
		movements: movements,
	}
}

// ── PurchaseIntake ────────────────────────────────────────────────────────────
// Books a purchase batch into inventory. This is the only entry point for
// stock, so the stock == Σ batches invariant holds from the first unit: the
// batch insert and the inventory increment share one transaction.

func (s *inventoryService) PurchaseIntake(ctx context.Context, actorID uuid.UUID, req dto.PurchaseIntakeRequest) (*dto.BatchResponse, error) {
	if req.Quantity <= 0 {
		return nil, apperr.InvalidQuantity(req.Quantity)
	}
	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		return nil, fmt.Errorf("invalid purchase_date: %w", err)
	}
	var expiry *time.Time
	if req.ExpiryDate != nil {
		t, err := time.Parse("2006-01-02", *req.ExpiryDate)
		if err != nil {
			return nil, fmt.Errorf("invalid expiry_date: %w", err)
		}
		expiry = &t
	}

	item, err := s.items.FindByNameManufacturer(ctx, req.Name, req.Manufacturer)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		item = &model.Item{
			Name:             req.Name,
			Manufacturer:     req.Manufacturer,
			Category:         model.ItemCategory(req.Category),
			MinimumLevel:     req.MinimumLevel,
			ExpiryNotifyDays: req.ExpiryNotifyDays,
		}
		if item.ExpiryNotifyDays == 0 {
			item.ExpiryNotifyDays = 30
		}
		if err := s.items.Create(ctx, item); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	batch := &model.PurchaseBatch{
		ItemID:            item.ID,
		PurchaseDate:      purchaseDate,
		QuantityPurchased: req.Quantity,
		QuantityRemaining: req.Quantity,
		UnitCost:          req.UnitCost,
		ExpiryDate:        expiry,
		Supplier:          req.Supplier,
	}

	txErr := s.txr.InTx(ctx, func(tx *gorm.DB) error {
		if err := s.batches.CreateTx(tx, batch); err != nil {
			return err
		}
		return s.adjustOrCreateStock(tx, item.ID, model.LocationInventory, req.Quantity, nil)
	})
	if txErr != nil {
		return nil, txErr
	}

	return batchToResponse(batch), nil
}

// ── Transfer ──────────────────────────────────────────────────────────────────
// Moves stock from inventory to the pharmacy counter, consuming purchase
// batches oldest-first and writing one MovementRecord per batch segment.
// Everything commits atomically: no partial move is ever visible.

func (s *inventoryService) Transfer(ctx context.Context, actorID uuid.UUID, req dto.TransferRequest) (*dto.TransferResponse, error) {
	if req.Quantity <= 0 {
		return nil, apperr.InvalidQuantity(req.Quantity)
	}

	item, err := s.items.FindByNameManufacturer(ctx, req.Name, req.Manufacturer)
	if err != nil {
		return nil, apperr.ItemNotFound(req.Name)
	}

	groupID := uuid.New()
	resp := &dto.TransferResponse{
		TransferGroupID: groupID.String(),
		ItemID:          item.ID.String(),
		Name:            item.Name,
		Quantity:        req.Quantity,
	}

	txErr := s.txr.InTx(ctx, func(tx *gorm.DB) error {
		src, err := s.stock.FindTx(tx, item.ID, model.LocationInventory)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ItemNotFound(item.Name)
			}
			return err
		}
		if src.Quantity < req.Quantity {
			return apperr.InsufficientStock(item.Name, src.Quantity, req.Quantity)
		}

		if err := s.adjustOrCreateStock(tx, item.ID, model.LocationPharmacy, 0, &req.SalePrice); err != nil {
			return err
		}

		err = consumeBatchesFIFO(tx, s.batches, item, req.Quantity, func(batch *model.PurchaseBatch, segQty int) error {
			mov := &model.MovementRecord{
				TransferGroupID: groupID,
				ItemID:          item.ID,
				BatchID:         batch.ID,
				Quantity:        segQty,
				Category:        item.Category,
				ActorID:         actorID,
			}
			if err := s.movements.CreateTx(tx, mov); err != nil {
				return err
			}
			resp.Segments = append(resp.Segments, dto.MovementSegmentResponse{
				ID:       mov.ID.String(),
				BatchID:  batch.ID.String(),
				Quantity: segQty,
				Status:   string(model.StatusActive),
			})
			return nil
		})
		if err != nil {
			return err
		}

		rows, err := s.stock.AdjustTx(tx, item.ID, model.LocationInventory, -req.Quantity)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperr.InsufficientStock(item.Name, src.Quantity, req.Quantity)
		}
		if _, err := s.stock.AdjustTx(tx, item.ID, model.LocationPharmacy, req.Quantity); err != nil {
			return err
		}

		resp.InventoryQuantity = src.Quantity - req.Quantity
		dst, err := s.stock.FindTx(tx, item.ID, model.LocationPharmacy)
		if err != nil {
			return err
		}
		resp.PharmacyQuantity = dst.Quantity
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return resp, nil
}

// ── ReverseTransfer ───────────────────────────────────────────────────────────
// Undoes a whole transfer group: pharmacy stock back to inventory, batch
// remainders restored, records flipped to reversed. The status flip doubles
// as the idempotency guard — a second reversal matches zero active rows.

func (s *inventoryService) ReverseTransfer(ctx context.Context, groupID uuid.UUID) error {
	records, err := s.movements.FindGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return apperr.ItemNotFound(groupID.String())
	}

	return s.txr.InTx(ctx, func(tx *gorm.DB) error {
		rows, err := s.movements.MarkGroupReversedTx(tx, groupID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperr.AlreadyReversed(groupID.String())
		}

		total := 0
		for _, rec := range records {
			if err := restoreBatch(tx, s.batches, rec.BatchID, rec.Quantity); err != nil {
				return err
			}
			total += rec.Quantity
		}

		itemID := records[0].ItemID
		rowsAff, err := s.stock.AdjustTx(tx, itemID, model.LocationPharmacy, -total)
		if err != nil {
			return err
		}
		if rowsAff == 0 {
			// The pharmacy already sold part of the moved units; the
			// transfer can no longer be unwound.
			cur, ferr := s.stock.FindTx(tx, itemID, model.LocationPharmacy)
			have := 0
			if ferr == nil {
				have = cur.Quantity
			}
			return apperr.InsufficientStock(itemID.String(), have, total)
		}
		_, err = s.stock.AdjustTx(tx, itemID, model.LocationInventory, total)
		return err
	})
}

// ── Listings ──────────────────────────────────────────────────────────────────

func (s *inventoryService) ListStock(ctx context.Context, loc model.Location, filter dto.StockFilter) (*dto.StockListResponse, error) {
	records, total, err := s.stock.List(ctx, loc, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.StockRecordResponse, 0, len(records))
	for _, rec := range records {
		row := dto.StockRecordResponse{
			ItemID:        rec.ItemID.String(),
			Location:      string(rec.Location),
			Quantity:      rec.Quantity,
			UnitSalePrice: rec.UnitSalePrice,
		}
		if rec.Item != nil {
			row.Name = rec.Item.Name
			row.Manufacturer = rec.Item.Manufacturer
			row.Category = string(rec.Item.Category)
		}
		data = append(data, row)
	}
	return &dto.StockListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *inventoryService) ListMovements(ctx context.Context, filter dto.MovementFilter) (*dto.MovementListResponse, error) {
	records, total, err := s.movements.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.MovementListItem, 0, len(records))
	for _, rec := range records {
		row := dto.MovementListItem{
			ID:              rec.ID.String(),
			TransferGroupID: rec.TransferGroupID.String(),
			BatchID:         rec.BatchID.String(),
			Quantity:        rec.Quantity,
			Category:        string(rec.Category),
			Status:          string(rec.Status),
			CreatedAt:       rec.CreatedAt.Format(time.RFC3339),
		}
		if rec.Item != nil {
			row.ItemName = rec.Item.Name
		}
		data = append(data, row)
	}
	return &dto.MovementListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *inventoryService) ListBatches(ctx context.Context, itemID uuid.UUID) ([]dto.BatchResponse, error) {
	batches, err := s.batches.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.BatchResponse, 0, len(batches))
	for i := range batches {
		resp = append(resp, *batchToResponse(&batches[i]))
	}
	return resp, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// adjustOrCreateStock applies delta to the (item, location) stock record,
// creating it with quantity 0 first if absent. price, when non-nil, updates
// the record's unit sale price.
func (s *inventoryService) adjustOrCreateStock(tx *gorm.DB, itemID uuid.UUID, loc model.Location, delta int, price *decimal.Decimal) error {
	_, err := s.stock.FindTx(tx, itemID, loc)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec := &model.StockRecord{ItemID: itemID, Location: loc}
		if price != nil {
			rec.UnitSalePrice = *price
		}
		if err := s.stock.CreateTx(tx, rec); err != nil {
			return err
		}
	} else if err != nil {
		return err
	} else if price != nil {
		if err := s.stock.UpdatePriceTx(tx, itemID, loc, *price); err != nil {
			return err
		}
	}

	if delta == 0 {
		return nil
	}
	rows, err := s.stock.AdjustTx(tx, itemID, loc, delta)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.InsufficientStock(itemID.String(), 0, -delta)
	}
	return nil
}

func batchToResponse(b *model.PurchaseBatch) *dto.BatchResponse {
	resp := &dto.BatchResponse{
		ID:                b.ID.String(),
		ItemID:            b.ItemID.String(),
		PurchaseDate:      b.PurchaseDate.Format("2006-01-02"),
		QuantityPurchased: b.QuantityPurchased,
		QuantityRemaining: b.QuantityRemaining,
		UnitCost:          b.UnitCost,
		Supplier:          b.Supplier,
	}
	if b.ExpiryDate != nil {
		d := b.ExpiryDate.Format("2006-01-02")
		resp.ExpiryDate = &d
	}
	return resp
}
