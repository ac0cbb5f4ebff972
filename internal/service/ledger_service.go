package service

import (
	"context"
	"time"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/apperr"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LedgerService exposes the running sales total and the transfer-to-log
// operation that drains it into the external sales log.
type LedgerService interface {
	Get(ctx context.Context) (*dto.LedgerResponse, error)
	TransferToLog(ctx context.Context, actorID uuid.UUID, req dto.TransferToLogRequest) (*dto.SalesLogEntryResponse, error)
	ListLog(ctx context.Context, limit int) ([]dto.SalesLogEntryResponse, error)
}

type ledgerService struct {
	txr    repository.TxRunner
	ledger repository.LedgerRepository
}

func NewLedgerService(txr repository.TxRunner, ledger repository.LedgerRepository) LedgerService {
	return &ledgerService{txr: txr, ledger: ledger}
}

func (s *ledgerService) Get(ctx context.Context) (*dto.LedgerResponse, error) {
	l, err := s.ledger.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.LedgerResponse{
		Balance:   l.Balance,
		UpdatedAt: l.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// TransferToLog moves amount out of the running total. The conditional
// decrement (balance >= amount) is checked in the same transaction as the
// log append, so two concurrent drains cannot both win.
func (s *ledgerService) TransferToLog(ctx context.Context, actorID uuid.UUID, req dto.TransferToLogRequest) (*dto.SalesLogEntryResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, apperr.LedgerUnderflow("transfer amount must be positive")
	}

	entry := &model.SalesLogEntry{
		Amount:      req.Amount,
		Description: req.Description,
		ActorID:     actorID,
	}
	txErr := s.txr.InTx(ctx, func(tx *gorm.DB) error {
		rows, err := s.ledger.DecrementTx(tx, req.Amount)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperr.LedgerUnderflow("transfer amount exceeds the current sales total balance")
		}
		return s.ledger.CreateLogEntryTx(tx, entry)
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.SalesLogEntryResponse{
		ID:          entry.ID.String(),
		Amount:      entry.Amount,
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *ledgerService) ListLog(ctx context.Context, limit int) ([]dto.SalesLogEntryResponse, error) {
	entries, err := s.ledger.ListLogEntries(ctx, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SalesLogEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.SalesLogEntryResponse{
			ID:          e.ID.String(),
			Amount:      e.Amount,
			Description: e.Description,
			CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}
