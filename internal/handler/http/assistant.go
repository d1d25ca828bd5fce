package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/retail-hr/internal/domain/assistant"
	"github.com/cmlabs-hris/retail-hr/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AssistantHandler interface {
	ExtractFromImage(w http.ResponseWriter, r *http.Request)
	ExtractFromDocument(w http.ResponseWriter, r *http.Request)
	Advise(w http.ResponseWriter, r *http.Request)
}

type assistantHandlerImpl struct {
	assistantService assistant.AssistantService
}

func NewAssistantHandler(assistantService assistant.AssistantService) AssistantHandler {
	return &assistantHandlerImpl{assistantService: assistantService}
}

// ExtractFromImage implements AssistantHandler
func (h *assistantHandlerImpl) ExtractFromImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		response.BadRequest(w, "Field 'image' is required", nil)
		return
	}
	defer file.Close()

	result, err := h.assistantService.ExtractFromImage(r.Context(), assistant.ExtractImageRequest{
		File:       file,
		FileHeader: fileHeader,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExtractFromDocument implements AssistantHandler
func (h *assistantHandlerImpl) ExtractFromDocument(w http.ResponseWriter, r *http.Request) {
	result, err := h.assistantService.ExtractFromDocument(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Advise implements AssistantHandler
func (h *assistantHandlerImpl) Advise(w http.ResponseWriter, r *http.Request) {
	var req assistant.AdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.assistantService.Advise(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
