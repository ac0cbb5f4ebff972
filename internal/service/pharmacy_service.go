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

// PharmacyService owns the point-of-sale settlement operation and its
// reversal. A sale consumes pharmacy stock against purchase batches FIFO,
// prices each segment at the batch's cost basis, and keeps the income and
// sales-total ledgers in step — all inside one transaction.
type PharmacyService interface {
	RecordSale(ctx context.Context, actorID uuid.UUID, req dto.RecordSaleRequest) (*dto.Receipt, error)
	ReverseSale(ctx context.Context, groupID uuid.UUID) error
	ListSales(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error)
}

type pharmacyService struct {
	txr     repository.TxRunner
	items   repository.ItemRepository
	stock   repository.StockRepository
	batches repository.BatchRepository
	sales   repository.SaleRepository
	income  repository.IncomeRepository
	ledger  repository.LedgerRepository
}

func NewPharmacyService(
	txr repository.TxRunner,
	items repository.ItemRepository,
	stock repository.StockRepository,
	batches repository.BatchRepository,
	sales repository.SaleRepository,
	income repository.IncomeRepository,
	ledger repository.LedgerRepository,
) PharmacyService {
	return &pharmacyService{
		txr:     txr,
		items:   items,
		stock:   stock,
		batches: batches,
		sales:   sales,
		income:  income,
		ledger:  ledger,
	}
}

// ── RecordSale ────────────────────────────────────────────────────────────────
// One transaction per sale call:
//   1. For each line: lock pharmacy stock, check quantity, FIFO-consume
//      batches, one SaleRecord per batch segment with segment revenue/cost.
//   2. Decrement pharmacy stock by the line total.
//   3. Net income (revenue - cost basis) > 0 ⇒ IncomeEntry.
//   4. SalesTotalLedger += gross line revenue.
// If any line fails the whole sale rolls back — no partial receipt.

func (s *pharmacyService) RecordSale(ctx context.Context, actorID uuid.UUID, req dto.RecordSaleRequest) (*dto.Receipt, error) {
	saleDate, err := time.Parse("2006-01-02", req.SaleDate)
	if err != nil {
		return nil, fmt.Errorf("invalid sale date: %w", err)
	}

	groupID := uuid.New()
	receipt := &dto.Receipt{
		SaleGroupID: groupID.String(),
		Date:        req.SaleDate,
		TotalIncome: decimal.Zero,
	}
	// Receipt lines merge per item name across the whole call.
	lineIndex := make(map[string]int)

	txErr := s.txr.InTx(ctx, func(tx *gorm.DB) error {
		for _, line := range req.Lines {
			if line.Quantity <= 0 {
				return apperr.InvalidQuantity(line.Quantity)
			}
			itemID, err := uuid.Parse(line.ItemID)
			if err != nil {
				return fmt.Errorf("invalid item_id %q: %w", line.ItemID, err)
			}

			item, err := s.items.FindByID(ctx, itemID)
			if err != nil {
				return apperr.ItemNotFound(line.ItemID)
			}

			counter, err := s.stock.FindTx(tx, itemID, model.LocationPharmacy)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.ItemNotFound(item.Name)
				}
				return err
			}
			if counter.Quantity < line.Quantity {
				return apperr.InsufficientStock(item.Name, counter.Quantity, line.Quantity)
			}

			lineRevenue := decimal.Zero
			lineCost := decimal.Zero

			err = consumeBatchesFIFO(tx, s.batches, item, line.Quantity, func(batch *model.PurchaseBatch, segQty int) error {
				qty := decimal.NewFromInt(int64(segQty))
				segRevenue := counter.UnitSalePrice.Mul(qty)
				segCost := batch.UnitCost.Mul(qty)
				lineRevenue = lineRevenue.Add(segRevenue)
				lineCost = lineCost.Add(segCost)

				return s.sales.CreateTx(tx, &model.SaleRecord{
					SaleGroupID: groupID,
					ItemID:      itemID,
					BatchID:     batch.ID,
					Quantity:    segQty,
					Revenue:     segRevenue,
					Cost:        segCost,
					Category:    model.ItemCategory(line.Category),
					SaleDate:    saleDate,
					ActorID:     actorID,
				})
			})
			if err != nil {
				return err
			}

			rows, err := s.stock.AdjustTx(tx, itemID, model.LocationPharmacy, -line.Quantity)
			if err != nil {
				return err
			}
			if rows == 0 {
				return apperr.InsufficientStock(item.Name, counter.Quantity, line.Quantity)
			}

			if netIncome := lineRevenue.Sub(lineCost); netIncome.IsPositive() {
				entry := &model.IncomeEntry{
					Source:      model.SourcePharmacySale,
					SourceRef:   groupID,
					Amount:      netIncome,
					Category:    line.Category,
					Description: fmt.Sprintf("Pharmacy sale of %s x%d", item.Name, line.Quantity),
					Date:        saleDate,
				}
				if err := s.income.CreateTx(tx, entry); err != nil {
					return err
				}
			}

			if err := s.ledger.IncrementTx(tx, lineRevenue); err != nil {
				return err
			}

			if idx, ok := lineIndex[item.Name]; ok {
				receipt.Lines[idx].Quantity += line.Quantity
				receipt.Lines[idx].Income = receipt.Lines[idx].Income.Add(lineRevenue)
			} else {
				lineIndex[item.Name] = len(receipt.Lines)
				receipt.Lines = append(receipt.Lines, dto.ReceiptLine{
					Item:     item.Name,
					Quantity: line.Quantity,
					Income:   lineRevenue,
				})
			}
			receipt.TotalIncome = receipt.TotalIncome.Add(lineRevenue)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return receipt, nil
}

// ── ReverseSale ───────────────────────────────────────────────────────────────
// Undoes a whole sale group: stock and batches restored, income entries
// removed, sales total decremented by the reversed revenue (clamped at zero
// in case the revenue was already transferred to the log). The active →
// reversed flip is the idempotency guard.

func (s *pharmacyService) ReverseSale(ctx context.Context, groupID uuid.UUID) error {
	records, err := s.sales.FindGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return apperr.ItemNotFound(groupID.String())
	}

	return s.txr.InTx(ctx, func(tx *gorm.DB) error {
		rows, err := s.sales.MarkGroupReversedTx(tx, groupID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperr.AlreadyReversed(groupID.String())
		}

		totalRevenue := decimal.Zero
		perItem := make(map[uuid.UUID]int)
		for _, rec := range records {
			if err := restoreBatch(tx, s.batches, rec.BatchID, rec.Quantity); err != nil {
				return err
			}
			perItem[rec.ItemID] += rec.Quantity
			totalRevenue = totalRevenue.Add(rec.Revenue)
		}

		for itemID, qty := range perItem {
			if _, err := s.stock.AdjustTx(tx, itemID, model.LocationPharmacy, qty); err != nil {
				return err
			}
		}

		if err := s.income.DeleteBySourceTx(tx, model.SourcePharmacySale, groupID); err != nil {
			return err
		}
		return s.ledger.DecrementClampedTx(tx, totalRevenue)
	})
}

// ── ListSales ─────────────────────────────────────────────────────────────────

func (s *pharmacyService) ListSales(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error) {
	records, total, err := s.sales.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.SaleListItem, 0, len(records))
	for _, rec := range records {
		row := dto.SaleListItem{
			ID:          rec.ID.String(),
			SaleGroupID: rec.SaleGroupID.String(),
			BatchID:     rec.BatchID.String(),
			Quantity:    rec.Quantity,
			Revenue:     rec.Revenue,
			Category:    string(rec.Category),
			SaleDate:    rec.SaleDate.Format("2006-01-02"),
			Status:      string(rec.Status),
		}
		if rec.Item != nil {
			row.ItemName = rec.Item.Name
		}
		data = append(data, row)
	}
	return &dto.SaleListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}
