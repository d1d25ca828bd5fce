package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/retail-hr/internal/domain/adjustment"
	"github.com/cmlabs-hris/retail-hr/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AdjustmentHandler interface {
	ListAdjustments(w http.ResponseWriter, r *http.Request)
	CreateAdjustment(w http.ResponseWriter, r *http.Request)
	DeleteAdjustment(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type adjustmentHandlerImpl struct {
	adjustmentService adjustment.AdjustmentService
}

func NewAdjustmentHandler(adjustmentService adjustment.AdjustmentService) AdjustmentHandler {
	return &adjustmentHandlerImpl{adjustmentService: adjustmentService}
}

// ListAdjustments implements AdjustmentHandler
func (h *adjustmentHandlerImpl) ListAdjustments(w http.ResponseWriter, r *http.Request) {
	filter := adjustment.AdjustmentFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Type:       r.URL.Query().Get("type"),
	}

	result, err := h.adjustmentService.ListAdjustments(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateAdjustment implements AdjustmentHandler
func (h *adjustmentHandlerImpl) CreateAdjustment(w http.ResponseWriter, r *http.Request) {
	var req adjustment.CreateAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.adjustmentService.CreateAdjustment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Adjustment recorded", result)
}

// DeleteAdjustment implements AdjustmentHandler
func (h *adjustmentHandlerImpl) DeleteAdjustment(w http.ResponseWriter, r *http.Request) {
	if err := h.adjustmentService.DeleteAdjustment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Adjustment deleted", nil)
}

// GetSummary implements AdjustmentHandler
func (h *adjustmentHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if actsForOther(r, employeeID) {
		response.Forbidden(w, "Employees can only view their own adjustments")
		return
	}

	result, err := h.adjustmentService.GetSummary(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
