package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/retail-hr/internal/domain/adjustment"
	"github.com/cmlabs-hris/retail-hr/internal/domain/assistant"
	"github.com/cmlabs-hris/retail-hr/internal/domain/attendance"
	"github.com/cmlabs-hris/retail-hr/internal/domain/career"
	"github.com/cmlabs-hris/retail-hr/internal/domain/document"
	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/domain/leave"
	"github.com/cmlabs-hris/retail-hr/internal/domain/master/branch"
	"github.com/cmlabs-hris/retail-hr/internal/domain/master/department"
	"github.com/cmlabs-hris/retail-hr/internal/domain/payroll"
	"github.com/cmlabs-hris/retail-hr/internal/domain/session"
	"github.com/cmlabs-hris/retail-hr/internal/domain/shift"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, attendance.ErrEmployeeNotFound),
		errors.Is(err, adjustment.ErrEmployeeNotFound),
		errors.Is(err, payroll.ErrEmployeeNotFound),
		errors.Is(err, leave.ErrEmployeeNotFound),
		errors.Is(err, document.ErrEmployeeNotFound),
		errors.Is(err, career.ErrEmployeeNotFound),
		errors.Is(err, session.ErrEmployeeNotFound),
		errors.Is(err, assistant.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrShiftNotFound):
		BadRequest(w, err.Error(), map[string]string{"shift_id": err.Error()})

	// Attendance
	case errors.Is(err, attendance.ErrEntryNotFound):
		NotFound(w, "Attendance entry not found")

	// Shift
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftInUse):
		Conflict(w, "Shift is assigned to one or more employees")

	// Adjustment
	case errors.Is(err, adjustment.ErrAdjustmentNotFound):
		NotFound(w, "Adjustment not found")

	// Payroll
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Leave
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")

	// Document
	case errors.Is(err, document.ErrDocumentNotFound),
		errors.Is(err, assistant.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, document.ErrFileNotFound),
		errors.Is(err, assistant.ErrNoFile):
		NotFound(w, "Document has no attached file")
	case errors.Is(err, document.ErrInvalidFileType),
		errors.Is(err, document.ErrFileTooLarge):
		BadRequest(w, err.Error(), nil)

	// Career
	case errors.Is(err, career.ErrMilestoneNotFound):
		NotFound(w, "Career milestone not found")

	// Master data
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, branch.ErrBranchNameExists):
		Conflict(w, "Branch with this name already exists")
	case errors.Is(err, branch.ErrBranchInUse):
		Conflict(w, "Branch is assigned to one or more employees")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department with this name already exists")
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, "Department is assigned to one or more employees")

	// Session
	case errors.Is(err, session.ErrInvalidToken):
		Unauthorized(w, err.Error())

	// Store
	case errors.Is(err, store.ErrVersionConflict):
		Conflict(w, "Data was modified by another request, please retry")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
