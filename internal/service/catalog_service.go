package service

import (
	"context"
	"errors"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/apperr"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService manages the item catalog. Stock quantities live in the
// inventory service; this one only owns the item master data.
type CatalogService interface {
	CreateItem(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error)
	GetItem(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error)
	ListItems(ctx context.Context, filter dto.ItemFilter) (*dto.ItemListResponse, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req dto.UpdateItemRequest) (*dto.ItemResponse, error)
	ListLowStock(ctx context.Context) ([]dto.LowStockItem, error)
}

type catalogService struct {
	items repository.ItemRepository
}

func NewCatalogService(items repository.ItemRepository) CatalogService {
	return &catalogService{items: items}
}

func (s *catalogService) CreateItem(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if existing, err := s.items.FindByNameManufacturer(ctx, req.Name, req.Manufacturer); err == nil && existing != nil {
		return nil, apperr.ItemExists(req.Name, req.Manufacturer)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item := &model.Item{
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
	resp := itemToResponse(item)
	return &resp, nil
}

func (s *catalogService) GetItem(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ItemNotFound(id.String())
		}
		return nil, err
	}
	resp := itemToResponse(item)
	return &resp, nil
}

func (s *catalogService) ListItems(ctx context.Context, filter dto.ItemFilter) (*dto.ItemListResponse, error) {
	items, total, err := s.items.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ItemResponse, len(items))
	for i := range items {
		data[i] = itemToResponse(&items[i])
	}
	return &dto.ItemListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *catalogService) UpdateItem(ctx context.Context, id uuid.UUID, req dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ItemNotFound(id.String())
		}
		return nil, err
	}
	if req.MinimumLevel != nil {
		item.MinimumLevel = *req.MinimumLevel
	}
	if req.ExpiryNotifyDays != nil {
		item.ExpiryNotifyDays = *req.ExpiryNotifyDays
	}
	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	resp := itemToResponse(item)
	return &resp, nil
}

func (s *catalogService) ListLowStock(ctx context.Context) ([]dto.LowStockItem, error) {
	return s.items.ListBelowMinimum(ctx)
}

func itemToResponse(i *model.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:               i.ID.String(),
		Name:             i.Name,
		Manufacturer:     i.Manufacturer,
		Category:         string(i.Category),
		MinimumLevel:     i.MinimumLevel,
		ExpiryNotifyDays: i.ExpiryNotifyDays,
	}
}
