package document

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/cmlabs-hris/retail-hr/internal/pkg/validator"
)

const MaxFileSize = 10 << 20

var allowedExtensions = []string{".jpg", ".jpeg", ".png", ".pdf"}

type CreateDocumentRequest struct {
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	Number     string `json:"number,omitempty"`
	IssueDate  string `json:"issue_date,omitempty"`
	ExpiryDate string `json:"expiry_date,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

func (r *CreateDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of iqama, passport, contract, health-card, other"})
	}
	if r.IssueDate != "" && !validator.IsValidDate(r.IssueDate) {
		errs = append(errs, validator.ValidationError{Field: "issue_date", Message: "issue_date must be YYYY-MM-DD"})
	}
	if r.ExpiryDate != "" && !validator.IsValidDate(r.ExpiryDate) {
		errs = append(errs, validator.ValidationError{Field: "expiry_date", Message: "expiry_date must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDocumentRequest struct {
	ID         string  `json:"-"`
	Type       *string `json:"type,omitempty"`
	Number     *string `json:"number,omitempty"`
	IssueDate  *string `json:"issue_date,omitempty"`
	ExpiryDate *string `json:"expiry_date,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *UpdateDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != nil && !validator.IsInSlice(*r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of iqama, passport, contract, health-card, other"})
	}
	if r.IssueDate != nil && *r.IssueDate != "" && !validator.IsValidDate(*r.IssueDate) {
		errs = append(errs, validator.ValidationError{Field: "issue_date", Message: "issue_date must be YYYY-MM-DD"})
	}
	if r.ExpiryDate != nil && *r.ExpiryDate != "" && !validator.IsValidDate(*r.ExpiryDate) {
		errs = append(errs, validator.ValidationError{Field: "expiry_date", Message: "expiry_date must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttachFileRequest struct {
	ID         string
	File       multipart.File
	FileHeader *multipart.FileHeader
}

func (r *AttachFileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.File == nil || r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{Field: "file", Message: "file is required"})
		return errs
	}
	ext := strings.ToLower(filepath.Ext(r.FileHeader.Filename))
	if !validator.IsInSlice(ext, allowedExtensions) {
		errs = append(errs, validator.ValidationError{Field: "file", Message: ErrInvalidFileType.Error()})
	}
	if r.FileHeader.Size > MaxFileSize {
		errs = append(errs, validator.ValidationError{Field: "file", Message: ErrFileTooLarge.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DocumentFilter struct {
	EmployeeID string `json:"employee_id,omitempty"`
	Type       string `json:"type,omitempty"`
	State      string `json:"state,omitempty"`
}

type DocumentResponse struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employee_id"`
	EmployeeName    string `json:"employee_name,omitempty"`
	Type            string `json:"type"`
	Number          string `json:"number,omitempty"`
	IssueDate       string `json:"issue_date,omitempty"`
	ExpiryDate      string `json:"expiry_date,omitempty"`
	ExpiryState     string `json:"expiry_state"`
	DaysUntilExpiry *int   `json:"days_until_expiry,omitempty"`
	HasFile         bool   `json:"has_file"`
	Notes           string `json:"notes,omitempty"`
}

func ToResponse(d Document, employeeName, today string, soonDays int) DocumentResponse {
	resp := DocumentResponse{
		ID:           d.ID,
		EmployeeID:   d.EmployeeID,
		EmployeeName: employeeName,
		Type:         string(d.Type),
		Number:       d.Number,
		IssueDate:    d.IssueDate,
		ExpiryDate:   d.ExpiryDate,
		ExpiryState:  string(d.State(today, soonDays)),
		HasFile:      d.FilePath != "",
		Notes:        d.Notes,
	}
	if days, ok := d.DaysUntilExpiry(today); ok {
		resp.DaysUntilExpiry = &days
	}
	return resp
}
