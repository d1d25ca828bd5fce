package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/retail-hr/internal/domain/leave"
	"github.com/cmlabs-hris/retail-hr/internal/domain/session"
	"github.com/cmlabs-hris/retail-hr/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	ListLeaves(w http.ResponseWriter, r *http.Request)
	GetLeave(w http.ResponseWriter, r *http.Request)
	CreateLeave(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	DeleteLeave(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// ListLeaves implements LeaveHandler. Employee sessions only see their own.
func (h *leaveHandlerImpl) ListLeaves(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := leave.LeaveFilter{
		EmployeeID: q.Get("employee_id"),
		Status:     q.Get("status"),
		Type:       q.Get("type"),
	}
	if role, own := sessionFromRequest(r); role != session.RoleHR {
		filter.EmployeeID = own
	}

	result, err := h.leaveService.ListLeaves(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetLeave implements LeaveHandler
func (h *leaveHandlerImpl) GetLeave(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.GetLeave(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if actsForOther(r, result.EmployeeID) {
		response.Forbidden(w, "Employees can only view their own leave requests")
		return
	}

	response.Success(w, result)
}

// CreateLeave implements LeaveHandler
func (h *leaveHandlerImpl) CreateLeave(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if actsForOther(r, req.EmployeeID) {
		response.Forbidden(w, "Employees can only request leave for themselves")
		return
	}

	result, err := h.leaveService.CreateLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

// UpdateStatus implements LeaveHandler
func (h *leaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.leaveService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave status updated", result)
}

// DeleteLeave implements LeaveHandler
func (h *leaveHandlerImpl) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	if err := h.leaveService.DeleteLeave(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request deleted", nil)
}
