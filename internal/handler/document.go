package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/techwriters/workshop-api/internal/handler/dto"
	"github.com/techwriters/workshop-api/internal/model"
)

// DocumentHandler handles the ephemeral document endpoint. Documents are
// synthesized per request and never stored.
type DocumentHandler struct {
	logger *slog.Logger
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		logger: logger,
	}
}

// Create handles POST /api/v1/documents (bearer token required).
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	if req.Title == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "Bad Request", "Missing required fields: title, content")
		return
	}

	category := req.Category
	if category == "" {
		category = "general"
	}

	now := time.Now()
	doc := model.Document{
		ID:        now.UnixMilli(),
		Title:     req.Title,
		Content:   req.Content,
		Category:  category,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}

	h.logger.Info("document_created", "document_id", doc.ID, "category", doc.Category)

	writeJSON(w, http.StatusCreated, doc)
}
