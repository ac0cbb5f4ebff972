package service

import (
	"context"
	"testing"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/apperr"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateItem_DefaultsNotifyWindow(t *testing.T) {
	st := newMemState()
	svc := NewCatalogService(&memItemRepo{st: st})

	resp, err := svc.CreateItem(context.Background(), dto.CreateItemRequest{
		Name:         "Latanoprost",
		Manufacturer: "Pfizer",
		Category:     "drug",
		MinimumLevel: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, resp.ExpiryNotifyDays)
	assert.Equal(t, 5, resp.MinimumLevel)
}

func TestCreateItem_RejectsDuplicate(t *testing.T) {
	st := newMemState()
	svc := NewCatalogService(&memItemRepo{st: st})

	req := dto.CreateItemRequest{Name: "Latanoprost", Manufacturer: "Pfizer", Category: "drug"}
	_, err := svc.CreateItem(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CreateItem(context.Background(), req)
	assert.ErrorIs(t, err, apperr.ItemExists("", ""))
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Len(t, st.items, 1)
}

func TestGetItem_NotFound(t *testing.T) {
	st := newMemState()
	svc := NewCatalogService(&memItemRepo{st: st})

	_, err := svc.GetItem(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperr.ItemNotFound(""))
}

func TestUpdateItem_PartialFields(t *testing.T) {
	st := newMemState()
	svc := NewCatalogService(&memItemRepo{st: st})

	created, err := svc.CreateItem(context.Background(), dto.CreateItemRequest{
		Name: "Timolol", Manufacturer: "Acme", Category: "drug", MinimumLevel: 3,
	})
	require.NoError(t, err)

	newMin := 8
	updated, err := svc.UpdateItem(context.Background(), uuid.MustParse(created.ID), dto.UpdateItemRequest{
		MinimumLevel: &newMin,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, updated.MinimumLevel)
	assert.Equal(t, 30, updated.ExpiryNotifyDays, "untouched field keeps its value")
}

func TestListLowStock(t *testing.T) {
	f := newEngineFixture()
	svc := NewCatalogService(f.items)

	low := f.seedItem("Scarce", batchSpec{Qty: 2, Cost: "1.00", DaysAgo: 1})
	for i := range f.st.items {
		if f.st.items[i].ID == low.ID {
			f.st.items[i].MinimumLevel = 5
		}
	}
	f.seedItem("Plenty", batchSpec{Qty: 50, Cost: "1.00", DaysAgo: 1})

	report, err := svc.ListLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, low.ID, report[0].ItemID)
	assert.Equal(t, 2, report[0].OnHand)
	assert.Equal(t, 5, report[0].MinimumLevel)
}

func TestApperrKindsMapStably(t *testing.T) {
	assert.Equal(t, apperr.KindClient, apperr.KindOf(apperr.InsufficientStock("x", 1, 2)))
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(apperr.AlreadyReversed("x")))
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(apperr.NoAvailableBatch("x")))
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(assert.AnError), "foreign errors default to internal")
	assert.Equal(t, "ITEM_NOT_FOUND", apperr.CodeOf(apperr.ItemNotFound("x")))
}
