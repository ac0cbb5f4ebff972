package service

import (
	"errors"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/apperr"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// consumeBatchesFIFO drains qty units of item from its purchase batches,
// oldest purchase date first, inside the caller's transaction. onSegment is
// invoked once per batch segment after the decrement succeeds — transfer
// uses it to write MovementRecords, sale to write SaleRecords and price the
// segment at the batch's cost basis.
//
// Running out of batches while units remain means the stock ledger and the
// batch store disagree: the caller's stock check already passed, so this is
// a broken invariant, not bad input.
func consumeBatchesFIFO(tx *gorm.DB, batches repository.BatchRepository, item *model.Item, qty int, onSegment func(batch *model.PurchaseBatch, segQty int) error) error {
	if qty <= 0 {
		return apperr.InvalidQuantity(qty)
	}

	remaining := qty
	for remaining > 0 {
		batch, err := batches.NextAvailableTx(tx, item.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NoAvailableBatch(item.Name)
			}
			return err
		}

		segQty := batch.QuantityRemaining
		if segQty > remaining {
			segQty = remaining
		}

		rows, err := batches.ConsumeTx(tx, batch.ID, segQty)
		if err != nil {
			return err
		}
		if rows == 0 {
			// The batch was row-locked when read, so a miss here means the
			// store itself rejected the decrement.
			return apperr.NoAvailableBatch(item.Name)
		}

		if err := onSegment(batch, segQty); err != nil {
			return err
		}
		remaining -= segQty
	}
	return nil
}

// restoreBatch puts qty units back on a batch. Restoring past the
// originally purchased quantity is clamped rather than rejected — the
// purchased figure is a historical record, and an overshoot means some
// earlier operation already mis-booked; we log it and keep the batch sane.
func restoreBatch(tx *gorm.DB, batches repository.BatchRepository, batchID uuid.UUID, qty int) error {
	b, err := batches.RestoreTx(tx, batchID, qty)
	if err != nil {
		return err
	}
	if b.QuantityRemaining > b.QuantityPurchased {
		log.Warn().
			Str("batch_id", b.ID.String()).
			Int("remaining", b.QuantityRemaining).
			Int("purchased", b.QuantityPurchased).
			Msg("batch restore exceeded purchased quantity; clamping")
		return batches.CapRemainingTx(tx, b.ID)
	}
	return nil
}
