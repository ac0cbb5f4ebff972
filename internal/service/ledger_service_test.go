package service

import (
	"context"
	"testing"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/apperr"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferToLog_DrainsBalance(t *testing.T) {
	f := newEngineFixture()
	f.st.ledger.Balance = decimal.RequireFromString("100.00")

	resp, err := f.ledgerSvc.TransferToLog(context.Background(), uuid.New(), dto.TransferToLogRequest{
		Amount:      decimal.RequireFromString("40.00"),
		Description: "weekly cash handover",
	})
	require.NoError(t, err)
	assert.True(t, resp.Amount.Equal(decimal.RequireFromString("40.00")))

	assert.True(t, f.st.ledger.Balance.Equal(decimal.RequireFromString("60.00")))
	require.Len(t, f.st.logEntries, 1)
	assert.Equal(t, "weekly cash handover", f.st.logEntries[0].Description)
}

func TestTransferToLog_Underflow(t *testing.T) {
	f := newEngineFixture()
	f.st.ledger.Balance = decimal.RequireFromString("10.00")

	_, err := f.ledgerSvc.TransferToLog(context.Background(), uuid.New(), dto.TransferToLogRequest{
		Amount: decimal.RequireFromString("10.01"),
	})
	assert.ErrorIs(t, err, apperr.LedgerUnderflow(""))

	// The rejected drain wrote nothing.
	assert.True(t, f.st.ledger.Balance.Equal(decimal.RequireFromString("10.00")))
	assert.Empty(t, f.st.logEntries)
}

func TestTransferToLog_RejectsNonPositiveAmount(t *testing.T) {
	f := newEngineFixture()
	f.st.ledger.Balance = decimal.RequireFromString("10.00")

	_, err := f.ledgerSvc.TransferToLog(context.Background(), uuid.New(), dto.TransferToLogRequest{
		Amount: decimal.Zero,
	})
	assert.ErrorIs(t, err, apperr.LedgerUnderflow(""))
	assert.Empty(t, f.st.logEntries)
}

func TestLedgerGet(t *testing.T) {
	f := newEngineFixture()
	f.st.ledger.Balance = decimal.RequireFromString("33.50")

	resp, err := f.ledgerSvc.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Balance.Equal(decimal.RequireFromString("33.50")))
}
