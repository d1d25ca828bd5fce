package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/retail-hr/internal/domain/career"
	"github.com/cmlabs-hris/retail-hr/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CareerHandler interface {
	GetPath(w http.ResponseWriter, r *http.Request)
	AddMilestone(w http.ResponseWriter, r *http.Request)
	DeleteMilestone(w http.ResponseWriter, r *http.Request)
}

type careerHandlerImpl struct {
	careerService career.CareerService
}

func NewCareerHandler(careerService career.CareerService) CareerHandler {
	return &careerHandlerImpl{careerService: careerService}
}

// GetPath implements CareerHandler
func (h *careerHandlerImpl) GetPath(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if actsForOther(r, employeeID) {
		response.Forbidden(w, "Employees can only view their own career path")
		return
	}

	result, err := h.careerService.GetPath(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AddMilestone implements CareerHandler
func (h *careerHandlerImpl) AddMilestone(w http.ResponseWriter, r *http.Request) {
	var req career.CreateMilestoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.careerService.AddMilestone(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Milestone added", result)
}

// DeleteMilestone implements CareerHandler
func (h *careerHandlerImpl) DeleteMilestone(w http.ResponseWriter, r *http.Request) {
	if err := h.careerService.DeleteMilestone(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Milestone deleted", nil)
}
