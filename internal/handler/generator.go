package handler

import (
	"errors"
	"net/http"

	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Generate(r.Context(), middleware.ClientIP(r), req)
	if err != nil {
		writeGenerationError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGenerateCustom handles POST /api/v1/generate/custom requests.
func (h *GeneratorHandler) HandleGenerateCustom(w http.ResponseWriter, r *http.Request) {
	var req model.CustomGenerateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.GenerateCustom(r.Context(), middleware.ClientIP(r), req)
	if err != nil {
		writeGenerationError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGeneratePronounceable handles POST /api/v1/generate/pronounceable requests.
func (h *GeneratorHandler) HandleGeneratePronounceable(w http.ResponseWriter, r *http.Request) {
	var req model.PronounceableRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.GeneratePronounceable(r.Context(), middleware.ClientIP(r), req)
	if err != nil {
		writeGenerationError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGenerateBatch handles POST /api/v1/generate/batch requests.
func (h *GeneratorHandler) HandleGenerateBatch(w http.ResponseWriter, r *http.Request) {
	var req model.BatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.GenerateBatch(r.Context(), middleware.ClientIP(r), req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownMode) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeGenerationError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
