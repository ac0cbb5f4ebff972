package handler

import (
	"net/http"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/apierror"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/service"

	"github.com/gin-gonic/gin"
)

type PatientsHandler struct{ svc service.PatientService }

func NewPatientsHandler(svc service.PatientService) *PatientsHandler {
	return &PatientsHandler{svc: svc}
}

// RegisterPatient godoc
// @Summary      Register a patient
// @Description  Creates the patient record and assigns the next sequential registration number.
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreatePatientRequest true "Patient data"
// @Success      201  {object} dto.PatientResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/patients [post]
func (h *PatientsHandler) RegisterPatient(c *gin.Context) {
	var req dto.CreatePatientRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetPatient godoc
// @Summary      Get patient
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Patient UUID"
// @Success      200 {object} dto.PatientResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/patients/{id} [get]
func (h *PatientsHandler) GetPatient(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListPatients godoc
// @Summary      List patients
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        name  query string false "Name substring"
// @Param        page  query int    false "Page (default 1)"
// @Param        limit query int    false "Rows per page (default 50)"
// @Success      200 {object} dto.PatientListResponse
// @Router       /v1/patients [get]
func (h *PatientsHandler) ListPatients(c *gin.Context) {
	var filter dto.PatientFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdatePatient godoc
// @Summary      Update patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                  true "Patient UUID"
// @Param        body body dto.UpdatePatientRequest true "Fields to change"
// @Success      200  {object} dto.PatientResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/patients/{id} [put]
func (h *PatientsHandler) UpdatePatient(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePatientRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
