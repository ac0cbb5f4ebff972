package handler

import (
	"net/http"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/apierror"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/service"

	"github.com/gin-gonic/gin"
)

type ItemsHandler struct{ svc service.CatalogService }

func NewItemsHandler(svc service.CatalogService) *ItemsHandler { return &ItemsHandler{svc: svc} }

// CreateItem godoc
// @Summary      Create catalog item
// @Description  Adds an item to the catalog. (name, manufacturer) must be unique.
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateItemRequest true "Item data"
// @Success      201  {object} dto.ItemResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/items [post]
func (h *ItemsHandler) CreateItem(c *gin.Context) {
	var req dto.CreateItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateItem(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetItem godoc
// @Summary      Get catalog item
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Item UUID"
// @Success      200 {object} dto.ItemResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/items/{id} [get]
func (h *ItemsHandler) GetItem(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetItem(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListItems godoc
// @Summary      List catalog items
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        name     query string false "Name substring"
// @Param        category query string false "drug | glasses | frame | sunglasses"
// @Param        page     query int    false "Page (default 1)"
// @Param        limit    query int    false "Rows per page (default 50)"
// @Success      200 {object} dto.ItemListResponse
// @Router       /v1/items [get]
func (h *ItemsHandler) ListItems(c *gin.Context) {
	var filter dto.ItemFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListItems(c.Request.Context(), filter)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateItem godoc
// @Summary      Update catalog item
// @Description  Adjusts the minimum-level threshold and expiry-notify window.
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string               true "Item UUID"
// @Param        body body dto.UpdateItemRequest true "Fields to change"
// @Success      200  {object} dto.ItemResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/items/{id} [put]
func (h *ItemsHandler) UpdateItem(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListLowStock godoc
// @Summary      Items below minimum level
// @Description  Returns items whose combined on-hand quantity is under their threshold.
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.LowStockItem
// @Router       /v1/items/low-stock [get]
func (h *ItemsHandler) ListLowStock(c *gin.Context) {
	resp, err := h.svc.ListLowStock(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
