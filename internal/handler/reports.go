package handler

import (
	"net/http"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/apierror"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// IncomeExpense godoc
// @Summary      Income / expense report
// @Description  Totals income (tagged by source), expenses by category and department income for a date range.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        from query string false "From date YYYY-MM-DD (default: today)"
// @Param        to   query string false "To date YYYY-MM-DD, exclusive (default: tomorrow)"
// @Success      200  {object} dto.IncomeExpenseReport
// @Failure      400  {object} apierror.APIError
// @Router       /v1/reports/income-expense [get]
func (h *ReportsHandler) IncomeExpense(c *gin.Context) {
	var period dto.ReportPeriod
	if err := c.ShouldBindQuery(&period); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.IncomeExpense(c.Request.Context(), period)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListNotifications godoc
// @Summary      Unseen stock alerts
// @Description  Low-stock and near-expiry notifications raised by the background scanner.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.NotificationResponse
// @Router       /v1/notifications [get]
func (h *ReportsHandler) ListNotifications(c *gin.Context) {
	resp, err := h.svc.ListNotifications(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MarkNotificationSeen godoc
// @Summary      Mark a notification seen
// @Tags         reports
// @Security     BearerAuth
// @Param        id path string true "Notification UUID"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/notifications/{id}/seen [put]
func (h *ReportsHandler) MarkNotificationSeen(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.MarkNotificationSeen(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
