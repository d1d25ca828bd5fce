package document

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/retail-hr/internal/domain/document"
	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/domain/settings"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/storage"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/timeutil"
	"github.com/cmlabs-hris/retail-hr/internal/service/file"
	"github.com/google/uuid"
)

type DocumentServiceImpl struct {
	locker       *store.Locker
	documentRepo document.DocumentRepository
	employeeRepo employee.EmployeeRepository
	settingsRepo settings.SettingsRepository
	fileService  file.FileService
	today        func() string
}

func NewDocumentService(
	locker *store.Locker,
	documentRepo document.DocumentRepository,
	employeeRepo employee.EmployeeRepository,
	settingsRepo settings.SettingsRepository,
	fileService file.FileService,
) document.DocumentService {
	return &DocumentServiceImpl{
		locker:       locker,
		documentRepo: documentRepo,
		employeeRepo: employeeRepo,
		settingsRepo: settingsRepo,
		fileService:  fileService,
		today:        func() string { return timeutil.Today(time.Local) },
	}
}

func (s *DocumentServiceImpl) CreateDocument(ctx context.Context, req document.CreateDocumentRequest) (document.DocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return document.DocumentResponse{}, err
	}

	roster, err := s.employeeRepo.Load(ctx)
	if err != nil {
		return document.DocumentResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}
	emp, ok := roster.Get(req.EmployeeID)
	if !ok {
		return document.DocumentResponse{}, document.ErrEmployeeNotFound
	}

	unlock := s.locker.Lock(store.KeyDocuments)
	defer unlock()

	ledger, err := s.documentRepo.Load(ctx)
	if err != nil {
		return document.DocumentResponse{}, fmt.Errorf("failed to load documents: %w", err)
	}

	d := document.Document{
		ID:         uuid.New().String(),
		EmployeeID: req.EmployeeID,
		Type:       document.Type(req.Type),
		Number:     req.Number,
		IssueDate:  req.IssueDate,
		ExpiryDate: req.ExpiryDate,
		Notes:      req.Notes,
	}
	if _, err := s.documentRepo.Save(ctx, ledger.Put(d)); err != nil {
		return document.DocumentResponse{}, fmt.Errorf("failed to save document: %w", err)
	}

	slog.Info("Created document", "document_id", d.ID, "employee_id", d.EmployeeID, "type", d.Type)
	return s.toResponse(ctx, d, emp.Name)
}

func (s *DocumentServiceImpl) GetDocument(ctx context.Context, id string) (document.DocumentResponse, error) {
	ledger, err := s.documentRepo.Load(ctx)
	if err != nil {
		return document.DocumentResponse{}, fmt.Errorf("failed to load documents: %w", err)
	}
	d, ok := ledger.Get(id)
	if !ok {
		return document.DocumentResponse{}, document.ErrDocumentNotFound
	}
	names, err := s.employeeNames(ctx)
	if err != nil {
		return document.DocumentResponse{}, err
	}
	return s.toResponse(ctx, d, names[d.EmployeeID])
}

func (s *DocumentServiceImpl) ListDocuments(ctx context.Context, filter document.DocumentFilter) ([]document.DocumentResponse, error) {
	ledger, err := s.documentRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}
	names, err := s.employeeNames(ctx)
	if err != nil {
		return nil, err
	}
	soonDays, err := s.soonDays(ctx)
	if err != nil {
		return nil, err
	}
	today := s.today()

	docs := ledger.Where(func(d document.Document) bool {
		if filter.EmployeeID != "" && d.EmployeeID != filter.EmployeeID {
			return false
		}
		if filter.Type != "" && string(d.Type) != filter.Type {
			return false
		}
		if filter.State != "" && string(d.State(today, soonDays)) != filter.State {
			return false
		}
		return true
	})

	resp := make([]document.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		resp = append(resp, document.ToResponse(d, names[d.EmployeeID], today, soonDays))
	}
	return resp, nil
}

func (s *DocumentServiceImpl) UpdateDocument(ctx context.Context, req document.UpdateDocumentRequest) (document.DocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return document.DocumentResponse{}, err
	}

	unlock := s.locker.Lock(store.KeyDocuments)
	defer unlock()

	ledger, err := s.documentRepo.Load(ctx)
	if err != nil {
		return document.DocumentResponse{}, fmt.Errorf("failed to load documents: %w", err)
	}
	d, ok := ledger.Get(req.ID)
	if !ok {
		return document.DocumentResponse{}, document.ErrDocumentNotFound
	}

	if req.Type != nil {
		d.Type = document.Type(*req.Type)
	}
	if req.Number != nil {
		d.Number = *req.Number
	}
	if req.IssueDate != nil {
		d.IssueDate = *req.IssueDate
	}
	if req.ExpiryDate != nil {
		d.ExpiryDate = *req.ExpiryDate
	}
	if req.Notes != nil {
		d.Notes = *req.Notes
	}

	if _, err := s.documentRepo.Save(ctx, ledger.Put(d)); err != nil {
		return document.DocumentResponse{}, fmt.Errorf("failed to save document: %w", err)
	}

	names, err := s.employeeNames(ctx)
	if err != nil {
		return document.DocumentResponse{}, err
	}
	return s.toResponse(ctx, d, names[d.EmployeeID])
}

func (s *DocumentServiceImpl) DeleteDocument(ctx context.Context, id string) error {
	unlock := s.locker.Lock(store.KeyDocuments)
	defer unlock()

	ledger, err := s.documentRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load documents: %w", err)
	}
	d, ok := ledger.Get(id)
	if !ok {
		return document.ErrDocumentNotFound
	}
	next, err := ledger.Remove(id)
	if err != nil {
		return err
	}
	if _, err := s.documentRepo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save documents: %w", err)
	}

	s.removeFile(ctx, d.FilePath)
	return nil
}

func (s *DocumentServiceImpl) AttachFile(ctx context.Context, req document.AttachFileRequest) (document.DocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return document.DocumentResponse{}, err
	}

	unlock := s.locker.Lock(store.KeyDocuments)
	defer unlock()

	ledger, err := s.documentRepo.Load(ctx)
	if err != nil {
		return document.DocumentResponse{}, fmt.Errorf("failed to load documents: %w", err)
	}
	d, ok := ledger.Get(req.ID)
	if !ok {
		return document.DocumentResponse{}, document.ErrDocumentNotFound
	}

	path, err := s.fileService.UploadDocument(ctx, d.EmployeeID, string(d.Type), req.File, req.FileHeader.Filename)
	if err != nil {
		return document.DocumentResponse{}, err
	}

	previous := d.FilePath
	d.FilePath = path
	if _, err := s.documentRepo.Save(ctx, ledger.Put(d)); err != nil {
		s.removeFile(ctx, path)
		return document.DocumentResponse{}, fmt.Errorf("failed to save document: %w", err)
	}
	s.removeFile(ctx, previous)

	slog.Info("Attached document file", "document_id", d.ID, "path", path)

	names, err := s.employeeNames(ctx)
	if err != nil {
		return document.DocumentResponse{}, err
	}
	return s.toResponse(ctx, d, names[d.EmployeeID])
}

func (s *DocumentServiceImpl) OpenFile(ctx context.Context, id string) (io.ReadCloser, string, error) {
	ledger, err := s.documentRepo.Load(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load documents: %w", err)
	}
	d, ok := ledger.Get(id)
	if !ok {
		return nil, "", document.ErrDocumentNotFound
	}
	if d.FilePath == "" {
		return nil, "", document.ErrFileNotFound
	}

	rc, contentType, err := s.fileService.Open(ctx, d.FilePath)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return nil, "", document.ErrFileNotFound
		}
		return nil, "", err
	}
	return rc, contentType, nil
}

func (s *DocumentServiceImpl) ListExpiring(ctx context.Context) ([]document.DocumentResponse, error) {
	ledger, err := s.documentRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}
	names, err := s.employeeNames(ctx)
	if err != nil {
		return nil, err
	}
	soonDays, err := s.soonDays(ctx)
	if err != nil {
		return nil, err
	}
	today := s.today()

	docs := ledger.NeedingAttention(today, soonDays)
	resp := make([]document.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		resp = append(resp, document.ToResponse(d, names[d.EmployeeID], today, soonDays))
	}
	return resp, nil
}

// ==================== HELPERS ====================

func (s *DocumentServiceImpl) toResponse(ctx context.Context, d document.Document, employeeName string) (document.DocumentResponse, error) {
	soonDays, err := s.soonDays(ctx)
	if err != nil {
		return document.DocumentResponse{}, err
	}
	return document.ToResponse(d, employeeName, s.today(), soonDays), nil
}

func (s *DocumentServiceImpl) soonDays(ctx context.Context) (int, error) {
	cfg, err := s.settingsRepo.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load settings: %w", err)
	}
	return cfg.SoonDays(), nil
}

func (s *DocumentServiceImpl) employeeNames(ctx context.Context) (map[string]string, error) {
	roster, err := s.employeeRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	names := make(map[string]string, roster.Len())
	for _, e := range roster.All() {
		names[e.ID] = e.Name
	}
	return names, nil
}

func (s *DocumentServiceImpl) removeFile(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.fileService.DeleteFile(ctx, path); err != nil {
		slog.Warn("Failed to remove document file", "path", path, "error", err)
	}
}
