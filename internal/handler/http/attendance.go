package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/retail-hr/internal/domain/attendance"
	"github.com/cmlabs-hris/retail-hr/internal/handler/http/response"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/export"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	// Self service
	RecordClock(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
	GetEntry(w http.ResponseWriter, r *http.Request)
	GetMonthlyStats(w http.ResponseWriter, r *http.Request)

	// HR management
	UpsertEntry(w http.ResponseWriter, r *http.Request)
	BulkSetStatus(w http.ResponseWriter, r *http.Request)
	GetDailyView(w http.ResponseWriter, r *http.Request)
	GetTeamAnalysis(w http.ResponseWriter, r *http.Request)
	ExportTeamAnalysis(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// RecordClock implements AttendanceHandler
func (h *attendanceHandlerImpl) RecordClock(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordClockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if actsForOther(r, req.EmployeeID) {
		response.Forbidden(w, "Employees can only clock in for themselves")
		return
	}

	result, err := h.attendanceService.RecordClock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock recorded", result)
}

// ListEntries implements AttendanceHandler
func (h *attendanceHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if actsForOther(r, employeeID) {
		response.Forbidden(w, "Employees can only view their own attendance")
		return
	}

	result, err := h.attendanceService.ListEntries(r.Context(), employeeID, r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEntry implements AttendanceHandler
func (h *attendanceHandlerImpl) GetEntry(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if actsForOther(r, employeeID) {
		response.Forbidden(w, "Employees can only view their own attendance")
		return
	}

	result, err := h.attendanceService.GetEntry(r.Context(), employeeID, chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonthlyStats implements AttendanceHandler
func (h *attendanceHandlerImpl) GetMonthlyStats(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if actsForOther(r, employeeID) {
		response.Forbidden(w, "Employees can only view their own attendance")
		return
	}

	result, err := h.attendanceService.GetMonthlyStats(r.Context(), employeeID, r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpsertEntry implements AttendanceHandler
func (h *attendanceHandlerImpl) UpsertEntry(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.UpsertEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance saved", result)
}

// BulkSetStatus implements AttendanceHandler
func (h *attendanceHandlerImpl) BulkSetStatus(w http.ResponseWriter, r *http.Request) {
	var req attendance.BulkStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.BulkSetStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("%d entries updated", len(result)), result)
}

// GetDailyView implements AttendanceHandler
func (h *attendanceHandlerImpl) GetDailyView(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := attendance.DailyViewFilter{
		Date:             q.Get("date"),
		EmployeeStatus:   q.Get("employee_status"),
		AttendanceStatus: q.Get("attendance_status"),
	}

	result, err := h.attendanceService.GetDailyView(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTeamAnalysis implements AttendanceHandler
func (h *attendanceHandlerImpl) GetTeamAnalysis(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetTeamAnalysis(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportTeamAnalysis implements AttendanceHandler
func (h *attendanceHandlerImpl) ExportTeamAnalysis(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	rows, err := h.attendanceService.TeamAnalysis(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := export.AttendanceXLSX(&buf, month, rows); err != nil {
		slog.Error("Failed to render attendance export", "error", err)
		response.InternalServerError(w, "Failed to generate export")
		return
	}

	response.Attachment(w, xlsxContentType, fmt.Sprintf("attendance-%s.xlsx", month), buf.Bytes())
}
