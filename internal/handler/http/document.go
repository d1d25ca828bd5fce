package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/retail-hr/internal/domain/document"
	"github.com/cmlabs-hris/retail-hr/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DocumentHandler interface {
	ListDocuments(w http.ResponseWriter, r *http.Request)
	ListExpiring(w http.ResponseWriter, r *http.Request)
	GetDocument(w http.ResponseWriter, r *http.Request)
	CreateDocument(w http.ResponseWriter, r *http.Request)
	UpdateDocument(w http.ResponseWriter, r *http.Request)
	DeleteDocument(w http.ResponseWriter, r *http.Request)
	UploadFile(w http.ResponseWriter, r *http.Request)
	DownloadFile(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService document.DocumentService
}

func NewDocumentHandler(documentService document.DocumentService) DocumentHandler {
	return &documentHandlerImpl{documentService: documentService}
}

// ListDocuments implements DocumentHandler
func (h *documentHandlerImpl) ListDocuments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := document.DocumentFilter{
		EmployeeID: q.Get("employee_id"),
		Type:       q.Get("type"),
		State:      q.Get("state"),
	}

	result, err := h.documentService.ListDocuments(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListExpiring implements DocumentHandler
func (h *documentHandlerImpl) ListExpiring(w http.ResponseWriter, r *http.Request) {
	result, err := h.documentService.ListExpiring(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDocument implements DocumentHandler
func (h *documentHandlerImpl) GetDocument(w http.ResponseWriter, r *http.Request) {
	result, err := h.documentService.GetDocument(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateDocument implements DocumentHandler
func (h *documentHandlerImpl) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req document.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.documentService.CreateDocument(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document created successfully", result)
}

// UpdateDocument implements DocumentHandler
func (h *documentHandlerImpl) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	var req document.UpdateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.documentService.UpdateDocument(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document updated successfully", result)
}

// DeleteDocument implements DocumentHandler
func (h *documentHandlerImpl) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := h.documentService.DeleteDocument(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document deleted successfully", nil)
}

// UploadFile implements DocumentHandler
func (h *documentHandlerImpl) UploadFile(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(document.MaxFileSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Field 'file' is required", nil)
		return
	}
	defer file.Close()

	result, err := h.documentService.AttachFile(r.Context(), document.AttachFileRequest{
		ID:         chi.URLParam(r, "id"),
		File:       file,
		FileHeader: fileHeader,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "File uploaded successfully", result)
}

// DownloadFile implements DocumentHandler
func (h *documentHandlerImpl) DownloadFile(w http.ResponseWriter, r *http.Request) {
	rc, contentType, err := h.documentService.OpenFile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		slog.Warn("Failed to stream document file", "error", err)
	}
}
