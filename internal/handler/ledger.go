package handler

import (
	"net/http"
	"strconv"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/service"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct{ svc service.LedgerService }

func NewLedgerHandler(svc service.LedgerService) *LedgerHandler { return &LedgerHandler{svc: svc} }

// GetLedger godoc
// @Summary      Current sales-total balance
// @Tags         ledger
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.LedgerResponse
// @Router       /v1/ledger [get]
func (h *LedgerHandler) GetLedger(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TransferToLog godoc
// @Summary      Move sales total to the sales log
// @Description  Deducts an amount from the running sales total and appends a sales-log entry in the same transaction. Rejected if the amount exceeds the balance.
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.TransferToLogRequest true "Amount and note"
// @Success      201  {object} dto.SalesLogEntryResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/ledger/transfers [post]
func (h *LedgerHandler) TransferToLog(c *gin.Context) {
	var req dto.TransferToLogRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.TransferToLog(c.Request.Context(), actorID(c), req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListLog godoc
// @Summary      List sales-log entries
// @Tags         ledger
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Max entries (default 50)"
// @Success      200 {array} dto.SalesLogEntryResponse
// @Router       /v1/ledger/log [get]
func (h *LedgerHandler) ListLog(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	resp, err := h.svc.ListLog(c.Request.Context(), limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
