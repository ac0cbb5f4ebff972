package handler

import (
	"net/http"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/apierror"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/service"

	"github.com/gin-gonic/gin"
)

type PharmacyHandler struct{ svc service.PharmacyService }

func NewPharmacyHandler(svc service.PharmacyService) *PharmacyHandler {
	return &PharmacyHandler{svc: svc}
}

// RecordSale godoc
// @Summary      Record a pharmacy sale
// @Description  Sells one or more items over the counter. Consumes batches oldest-first, books net income and grows the sales-total ledger — all lines commit or none do.
// @Tags         pharmacy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RecordSaleRequest true "Sale lines"
// @Success      201  {object} dto.Receipt
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/pharmacy/sales [post]
func (h *PharmacyHandler) RecordSale(c *gin.Context) {
	var req dto.RecordSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RecordSale(c.Request.Context(), actorID(c), req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ReverseSale godoc
// @Summary      Reverse a sale
// @Description  Undoes a whole sale group: restores batch remainders and counter stock, removes the income entry and shrinks the sales-total ledger.
// @Tags         pharmacy
// @Security     BearerAuth
// @Param        groupId path string true "Sale group UUID"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Failure      409 {object} apierror.APIError
// @Router       /v1/pharmacy/sales/{groupId} [delete]
func (h *PharmacyHandler) ReverseSale(c *gin.Context) {
	groupID, ok := parseUUID(c, "groupId")
	if !ok {
		return
	}
	if err := h.svc.ReverseSale(c.Request.Context(), groupID); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSales godoc
// @Summary      List sales
// @Description  Paginated sale history, filterable by item, category, date and status.
// @Tags         pharmacy
// @Produce      json
// @Security     BearerAuth
// @Param        item_id  query string false "Item UUID"
// @Param        category query string false "drug | glasses | frame | sunglasses"
// @Param        date     query string false "Date YYYY-MM-DD"
// @Param        status   query string false "active | reversed"
// @Param        page     query int    false "Page (default 1)"
// @Param        limit    query int    false "Rows per page (default 50)"
// @Success      200 {object} dto.SaleListResponse
// @Router       /v1/pharmacy/sales [get]
func (h *PharmacyHandler) ListSales(c *gin.Context) {
	var filter dto.SaleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListSales(c.Request.Context(), filter)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
