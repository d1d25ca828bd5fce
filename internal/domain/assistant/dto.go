package assistant

import (
	"mime/multipart"

	"github.com/cmlabs-hris/retail-hr/internal/pkg/validator"
)

type ExtractImageRequest struct {
	File       multipart.File
	FileHeader *multipart.FileHeader
}

func (r *ExtractImageRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.File == nil || r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{Field: "file", Message: "file is required"})
	} else if r.FileHeader.Size > 10<<20 {
		errs = append(errs, validator.ValidationError{Field: "file", Message: "file size exceeds 10MB limit"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExtractionResponse struct {
	Available  bool        `json:"available"`
	Extraction *Extraction `json:"extraction,omitempty"`
}

type AdviceRequest struct {
	EmployeeID string `json:"employee_id,omitempty"`
	Prompt     string `json:"prompt"`
}

func (r *AdviceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Prompt) {
		errs = append(errs, validator.ValidationError{Field: "prompt", Message: "prompt is required"})
	}
	if len(r.Prompt) > 4000 {
		errs = append(errs, validator.ValidationError{Field: "prompt", Message: "prompt must not exceed 4000 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdviceResponse struct {
	Available bool   `json:"available"`
	Text      string `json:"text,omitempty"`
}
