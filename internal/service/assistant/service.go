package assistant

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/retail-hr/internal/domain/assistant"
	"github.com/cmlabs-hris/retail-hr/internal/domain/document"
	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/service/file"
)

// DefaultTimeout bounds a single assistant call.
const DefaultTimeout = 20 * time.Second

type AssistantServiceImpl struct {
	client       assistant.Client
	documentRepo document.DocumentRepository
	employeeRepo employee.EmployeeRepository
	fileService  file.FileService
	timeout      time.Duration
}

// NewAssistantService accepts a nil client; every call then reports the
// assistant as unavailable.
func NewAssistantService(
	client assistant.Client,
	documentRepo document.DocumentRepository,
	employeeRepo employee.EmployeeRepository,
	fileService file.FileService,
	timeout time.Duration,
) assistant.AssistantService {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &AssistantServiceImpl{
		client:       client,
		documentRepo: documentRepo,
		employeeRepo: employeeRepo,
		fileService:  fileService,
		timeout:      timeout,
	}
}

func (s *AssistantServiceImpl) ExtractFromImage(ctx context.Context, req assistant.ExtractImageRequest) (assistant.ExtractionResponse, error) {
	if err := req.Validate(); err != nil {
		return assistant.ExtractionResponse{}, err
	}
	if !file.IsImage(req.FileHeader.Filename) {
		return assistant.ExtractionResponse{}, document.ErrInvalidFileType
	}
	if s.client == nil {
		return assistant.ExtractionResponse{Available: false}, nil
	}

	buffer, err := io.ReadAll(req.File)
	if err != nil {
		return assistant.ExtractionResponse{}, fmt.Errorf("failed to read image: %w", err)
	}
	scaled, err := file.Downscale(buffer, file.MaxImageDimension)
	if err != nil {
		return assistant.ExtractionResponse{}, document.ErrInvalidFileType
	}

	return s.extract(ctx, scaled, "image/jpeg"), nil
}

func (s *AssistantServiceImpl) ExtractFromDocument(ctx context.Context, documentID string) (assistant.ExtractionResponse, error) {
	ledger, err := s.documentRepo.Load(ctx)
	if err != nil {
		return assistant.ExtractionResponse{}, fmt.Errorf("failed to load documents: %w", err)
	}
	d, ok := ledger.Get(documentID)
	if !ok {
		return assistant.ExtractionResponse{}, assistant.ErrDocumentNotFound
	}
	if d.FilePath == "" {
		return assistant.ExtractionResponse{}, assistant.ErrNoFile
	}
	if s.client == nil {
		return assistant.ExtractionResponse{Available: false}, nil
	}

	image, contentType, isImage, err := s.fileService.ReadImage(ctx, d.FilePath)
	if err != nil {
		slog.Warn("Failed to read document image", "document_id", d.ID, "error", err)
		return assistant.ExtractionResponse{Available: false}, nil
	}
	if !isImage {
		return assistant.ExtractionResponse{Available: false}, nil
	}

	return s.extract(ctx, image, contentType), nil
}

func (s *AssistantServiceImpl) Advise(ctx context.Context, req assistant.AdviceRequest) (assistant.AdviceResponse, error) {
	if err := req.Validate(); err != nil {
		return assistant.AdviceResponse{}, err
	}

	prompt := strings.TrimSpace(req.Prompt)
	if req.EmployeeID != "" {
		roster, err := s.employeeRepo.Load(ctx)
		if err != nil {
			return assistant.AdviceResponse{}, fmt.Errorf("failed to load employees: %w", err)
		}
		emp, ok := roster.Get(req.EmployeeID)
		if !ok {
			return assistant.AdviceResponse{}, assistant.ErrEmployeeNotFound
		}
		prompt = fmt.Sprintf("Employee: %s, %s in %s (%s branch), joined %s.\n\n%s",
			emp.Name, emp.Position, emp.Department, emp.Branch, emp.JoinDate, prompt)
	}

	if s.client == nil {
		return assistant.AdviceResponse{Available: false}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.client.Advise(ctx, prompt)
	if err != nil {
		slog.Warn("Assistant advice failed", "error", err)
		return assistant.AdviceResponse{Available: false}, nil
	}
	return assistant.AdviceResponse{Available: true, Text: text}, nil
}

func (s *AssistantServiceImpl) extract(ctx context.Context, image []byte, contentType string) assistant.ExtractionResponse {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	extraction, err := s.client.Extract(ctx, image, contentType)
	if err != nil {
		slog.Warn("Assistant extraction failed", "error", err)
		return assistant.ExtractionResponse{Available: false}
	}
	return assistant.ExtractionResponse{Available: true, Extraction: &extraction}
}
