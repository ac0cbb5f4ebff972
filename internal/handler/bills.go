package handler

import (
	"net/http"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/apierror"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/service"

	"github.com/gin-gonic/gin"
)

type BillsHandler struct{ svc service.BillingService }

func NewBillsHandler(svc service.BillingService) *BillsHandler { return &BillsHandler{svc: svc} }

// CreateBill godoc
// @Summary      Create a department bill
// @Description  Bills a patient for a department service. Books income and, when a doctor is attributed, credits their khata by their share — all in one transaction.
// @Tags         bills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateBillRequest true "Bill details"
// @Success      201  {object} dto.BillResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/bills [post]
func (h *BillsHandler) CreateBill(c *gin.Context) {
	var req dto.CreateBillRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateBill(c.Request.Context(), actorID(c), req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ReverseBill godoc
// @Summary      Reverse a bill
// @Description  Marks the bill reversed, removes its income entry and debits the doctor's khata with an inverse entry.
// @Tags         bills
// @Security     BearerAuth
// @Param        id path string true "Bill UUID"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Failure      409 {object} apierror.APIError
// @Router       /v1/bills/{id} [delete]
func (h *BillsHandler) ReverseBill(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.ReverseBill(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListBills godoc
// @Summary      List department bills
// @Tags         bills
// @Produce      json
// @Security     BearerAuth
// @Param        department query string false "Department name"
// @Param        patient_id query string false "Patient UUID"
// @Param        doctor_id  query string false "Doctor UUID"
// @Param        date       query string false "Date YYYY-MM-DD"
// @Param        status     query string false "active | reversed"
// @Param        page       query int    false "Page (default 1)"
// @Param        limit      query int    false "Rows per page (default 50)"
// @Success      200 {object} dto.BillListResponse
// @Router       /v1/bills [get]
func (h *BillsHandler) ListBills(c *gin.Context) {
	var filter dto.BillFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListBills(c.Request.Context(), filter)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateDoctor godoc
// @Summary      Register a doctor
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateDoctorRequest true "Doctor data"
// @Success      201  {object} dto.DoctorResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/doctors [post]
func (h *BillsHandler) CreateDoctor(c *gin.Context) {
	var req dto.CreateDoctorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	doctor := &model.Doctor{
		Name:      req.Name,
		Specialty: req.Specialty,
		Phone:     req.Phone,
		SharePct:  req.SharePct,
		Active:    true,
	}
	if err := h.svc.CreateDoctor(c.Request.Context(), doctor); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doctorToResponse(doctor))
}

// ListDoctors godoc
// @Summary      List doctors
// @Tags         doctors
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.DoctorResponse
// @Router       /v1/doctors [get]
func (h *BillsHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.svc.ListDoctors(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	resp := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		resp[i] = doctorToResponse(&doctors[i])
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateDoctor godoc
// @Summary      Update a doctor
// @Description  Patches the doctor's profile. Changing share_pct only affects future bills; existing khata entries keep the share they were booked with.
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                  true "Doctor UUID"
// @Param        body body dto.UpdateDoctorRequest true "Fields to update"
// @Success      200  {object} dto.DoctorResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/doctors/{id} [patch]
func (h *BillsHandler) UpdateDoctor(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateDoctorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	doctor, err := h.svc.UpdateDoctor(c.Request.Context(), id, req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctorToResponse(doctor))
}

// DeactivateDoctor godoc
// @Summary      Deactivate a doctor
// @Tags         doctors
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Doctor UUID"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/doctors/{id} [delete]
func (h *BillsHandler) DeactivateDoctor(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeactivateDoctor(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetKhata godoc
// @Summary      Doctor khata
// @Description  Returns the doctor's running account: balance plus the append-only entry history.
// @Tags         doctors
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Doctor UUID"
// @Success      200 {object} dto.KhataResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/doctors/{id}/khata [get]
func (h *BillsHandler) GetKhata(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetKhata(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func doctorToResponse(d *model.Doctor) dto.DoctorResponse {
	return dto.DoctorResponse{
		ID:        d.ID.String(),
		Name:      d.Name,
		Specialty: d.Specialty,
		Phone:     d.Phone,
		SharePct:  d.SharePct,
		Active:    d.Active,
	}
}
