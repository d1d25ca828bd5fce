package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/retail-hr/internal/domain/payroll"
	"github.com/cmlabs-hris/retail-hr/internal/handler/http/response"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/export"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PayrollHandler interface {
	ComputePayroll(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	ExportXLSX(w http.ResponseWriter, r *http.Request)
	ExportPayslips(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func payrollRequest(r *http.Request) payroll.ComputePayrollRequest {
	q := r.URL.Query()
	req := payroll.ComputePayrollRequest{
		StartMonth: q.Get("start_month"),
		EndMonth:   q.Get("end_month"),
		Name:       q.Get("name"),
		Department: q.Get("department"),
	}
	if req.EndMonth == "" {
		req.EndMonth = req.StartMonth
	}
	return req
}

// ComputePayroll implements PayrollHandler
func (h *payrollHandlerImpl) ComputePayroll(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ComputePayroll(r.Context(), payrollRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPayslip implements PayrollHandler
func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if actsForOther(r, employeeID) {
		response.Forbidden(w, "Employees can only view their own payslip")
		return
	}

	result, err := h.payrollService.GetPayslip(r.Context(), employeeID, payrollRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportXLSX implements PayrollHandler
func (h *payrollHandlerImpl) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	run, err := h.payrollService.Run(r.Context(), payrollRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := export.PayrollXLSX(&buf, run); err != nil {
		slog.Error("Failed to render payroll export", "error", err)
		response.InternalServerError(w, "Failed to generate export")
		return
	}

	filename := fmt.Sprintf("payroll-%s-%s.xlsx", run.Period.Start, run.Period.End)
	response.Attachment(w, xlsxContentType, filename, buf.Bytes())
}

// ExportPayslips implements PayrollHandler
func (h *payrollHandlerImpl) ExportPayslips(w http.ResponseWriter, r *http.Request) {
	run, err := h.payrollService.Run(r.Context(), payrollRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := export.PayslipPDF(&buf, run); err != nil {
		slog.Error("Failed to render payslips", "error", err)
		response.InternalServerError(w, "Failed to generate payslips")
		return
	}

	filename := fmt.Sprintf("payslips-%s-%s.pdf", run.Period.Start, run.Period.End)
	response.Attachment(w, "application/pdf", filename, buf.Bytes())
}
