package handler

import (
	"net/http"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/apierror"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/service"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct{ svc service.InventoryService }

func NewInventoryHandler(svc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// PurchaseIntake godoc
// @Summary      Book a purchase into inventory
// @Description  Creates a purchase batch and increments inventory stock in one transaction. The item is resolved or created by (name, manufacturer).
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.PurchaseIntakeRequest true "Purchase details"
// @Success      201  {object} dto.BatchResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/inventory/purchases [post]
func (h *InventoryHandler) PurchaseIntake(c *gin.Context) {
	var req dto.PurchaseIntakeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.PurchaseIntake(c.Request.Context(), actorID(c), req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Transfer godoc
// @Summary      Transfer stock to the pharmacy counter
// @Description  Moves quantity from inventory to pharmacy, consuming purchase batches oldest-first and recording one movement per batch segment. Atomic.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.TransferRequest true "Transfer details"
// @Success      201  {object} dto.TransferResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/inventory/transfers [post]
func (h *InventoryHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Transfer(c.Request.Context(), actorID(c), req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ReverseTransfer godoc
// @Summary      Reverse a transfer
// @Description  Undoes a whole transfer group: restores batch remainders, moves quantity back from pharmacy to inventory. Fails if the units were already sold.
// @Tags         inventory
// @Security     BearerAuth
// @Param        groupId path string true "Transfer group UUID"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Failure      409 {object} apierror.APIError
// @Router       /v1/inventory/transfers/{groupId} [delete]
func (h *InventoryHandler) ReverseTransfer(c *gin.Context) {
	groupID, ok := parseUUID(c, "groupId")
	if !ok {
		return
	}
	if err := h.svc.ReverseTransfer(c.Request.Context(), groupID); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListInventoryStock godoc
// @Summary      List inventory stock
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        name     query string false "Name substring"
// @Param        category query string false "drug | glasses | frame | sunglasses"
// @Param        page     query int    false "Page (default 1)"
// @Param        limit    query int    false "Rows per page (default 50)"
// @Success      200 {object} dto.StockListResponse
// @Router       /v1/inventory/stock [get]
func (h *InventoryHandler) ListInventoryStock(c *gin.Context) {
	h.listStock(c, model.LocationInventory)
}

// ListPharmacyStock godoc
// @Summary      List pharmacy counter stock
// @Tags         pharmacy
// @Produce      json
// @Security     BearerAuth
// @Param        name     query string false "Name substring"
// @Param        category query string false "drug | glasses | frame | sunglasses"
// @Param        page     query int    false "Page (default 1)"
// @Param        limit    query int    false "Rows per page (default 50)"
// @Success      200 {object} dto.StockListResponse
// @Router       /v1/pharmacy/stock [get]
func (h *InventoryHandler) ListPharmacyStock(c *gin.Context) {
	h.listStock(c, model.LocationPharmacy)
}

func (h *InventoryHandler) listStock(c *gin.Context, loc model.Location) {
	var filter dto.StockFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListStock(c.Request.Context(), loc, filter)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListMovements godoc
// @Summary      List transfer movements
// @Description  Paginated movement history, filterable by item, category and date.
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        item_id  query string false "Item UUID"
// @Param        category query string false "drug | glasses | frame | sunglasses"
// @Param        date     query string false "Date YYYY-MM-DD"
// @Param        page     query int    false "Page (default 1)"
// @Param        limit    query int    false "Rows per page (default 50)"
// @Success      200 {object} dto.MovementListResponse
// @Router       /v1/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	var filter dto.MovementFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListMovements(c.Request.Context(), filter)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListBatches godoc
// @Summary      List purchase batches for an item
// @Description  Shows each batch's purchased and remaining quantity in consumption order.
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Item UUID"
// @Success      200 {array} dto.BatchResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/inventory/items/{id}/batches [get]
func (h *InventoryHandler) ListBatches(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListBatches(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
