package handler

import (
	"net/http"

	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

// AnalyzerHandler handles HTTP requests for strength analysis.
type AnalyzerHandler struct {
	service *service.AnalyzerService
}

// NewAnalyzerHandler creates a new AnalyzerHandler.
func NewAnalyzerHandler(svc *service.AnalyzerService) *AnalyzerHandler {
	return &AnalyzerHandler{service: svc}
}

// HandleAnalyze handles POST /api/v1/analyze requests.
func (h *AnalyzerHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.Analyze(r.Context(), middleware.ClientIP(r), req))
}

// HandleCharset handles GET /api/v1/charset requests.
func (h *AnalyzerHandler) HandleCharset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.CharacterSet())
}
