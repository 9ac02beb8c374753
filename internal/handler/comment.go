package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/techwriters/workshop-api/internal/handler/dto"
	"github.com/techwriters/workshop-api/internal/model"
	"github.com/techwriters/workshop-api/internal/store"
)

// CommentHandler handles HTTP requests for comment operations.
type CommentHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(st *store.Store, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		store:  st,
		logger: logger,
	}
}

// List handles GET /comments.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	data, err := h.store.Read()
	if err != nil {
		h.logger.Error("store read failed", "error", err)
		writeInternalError(w)
		return
	}

	comments := data.Comments
	if comments == nil {
		comments = []model.Comment{}
	}
	writeJSON(w, http.StatusOK, comments)
}

// ListByPost handles GET /posts/{postID}/comments. The post itself is not
// checked: an unknown post id yields an empty list, not a 404. Asymmetric
// with comment creation, which does validate the post.
func (h *CommentHandler) ListByPost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(chi.URLParam(r, "postID"))
	if err != nil {
		writeJSON(w, http.StatusOK, []model.Comment{})
		return
	}

	data, err := h.store.Read()
	if err != nil {
		h.logger.Error("store read failed", "error", err)
		writeInternalError(w)
		return
	}

	comments := make([]model.Comment, 0)
	for _, c := range data.Comments {
		if c.PostID == postID {
			comments = append(comments, c)
		}
	}

	writeJSON(w, http.StatusOK, comments)
}

// Get handles GET /comments/{commentID}.
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "commentID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not Found", "Comment not found")
		return
	}

	data, err := h.store.Read()
	if err != nil {
		h.logger.Error("store read failed", "error", err)
		writeInternalError(w)
		return
	}

	idx := data.CommentIndex(id)
	if idx == -1 {
		writeError(w, http.StatusNotFound, "Not Found", "Comment not found")
		return
	}

	writeJSON(w, http.StatusOK, data.Comments[idx])
}

// Create handles POST /comments.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	if req.PostID == 0 || req.Name == "" || req.Email == "" || req.Body == "" {
		writeError(w, http.StatusBadRequest, "Bad Request", "Missing required fields: postId, name, email, body")
		return
	}

	data, err := h.store.Read()
	if err != nil {
		h.logger.Error("store read failed", "error", err)
		writeInternalError(w)
		return
	}

	if !data.PostExists(req.PostID) {
		writeError(w, http.StatusBadRequest, "Bad Request", "Invalid postId: post does not exist")
		return
	}

	comment := model.Comment{
		ID:     data.NextCommentID(),
		PostID: req.PostID,
		Name:   req.Name,
		Email:  req.Email,
		Body:   req.Body,
	}
	data.Comments = append(data.Comments, comment)

	if err := h.store.Write(data); err != nil {
		h.logger.Error("store write failed", "error", err)
		writeInternalError(w)
		return
	}

	h.logger.Info("comment_created", "comment_id", comment.ID, "post_id", comment.PostID)

	writeJSON(w, http.StatusCreated, comment)
}

// Replace handles PUT /comments/{commentID}. Existence is checked before
// the required-field and referential validation.
func (h *CommentHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "commentID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not Found", "Comment not found")
		return
	}

	var req dto.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	data, err := h.store.Read()
	if err != nil {
		h.logger.Error("store read failed", "error", err)
		writeInternalError(w)
		return
	}

	idx := data.CommentIndex(id)
	if idx == -1 {
		writeError(w, http.StatusNotFound, "Not Found", "Comment not found")
		return
	}

	if req.PostID == 0 || req.Name == "" || req.Email == "" || req.Body == "" {
		writeError(w, http.StatusBadRequest, "Bad Request", "Missing required fields: postId, name, email, body")
		return
	}

	if !data.PostExists(req.PostID) {
		writeError(w, http.StatusBadRequest, "Bad Request", "Invalid postId: post does not exist")
		return
	}

	data.Comments[idx] = model.Comment{
		ID:     id,
		PostID: req.PostID,
		Name:   req.Name,
		Email:  req.Email,
		Body:   req.Body,
	}

	if err := h.store.Write(data); err != nil {
		h.logger.Error("store write failed", "error", err)
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, data.Comments[idx])
}

// Update handles PATCH /comments/{commentID}.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "commentID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not Found", "Comment not found")
		return
	}

	var req dto.PatchCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	data, err := h.store.Read()
	if err != nil {
		h.logger.Error("store read failed", "error", err)
		writeInternalError(w)
		return
	}

	idx := data.CommentIndex(id)
	if idx == -1 {
		writeError(w, http.StatusNotFound, "Not Found", "Comment not found")
		return
	}

	if req.PostID != nil && !data.PostExists(*req.PostID) {
		writeError(w, http.StatusBadRequest, "Bad Request", "Invalid postId: post does not exist")
		return
	}

	comment := data.Comments[idx]
	if req.PostID != nil {
		comment.PostID = *req.PostID
	}
	if req.Name != nil {
		comment.Name = *req.Name
	}
	if req.Email != nil {
		comment.Email = *req.Email
	}
	if req.Body != nil {
		comment.Body = *req.Body
	}
	comment.ID = id
	data.Comments[idx] = comment

	if err := h.store.Write(data); err != nil {
		h.logger.Error("store write failed", "error", err)
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, comment)
}

// Delete handles DELETE /comments/{commentID}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "commentID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not Found", "Comment not found")
		return
	}

	data, err := h.store.Read()
	if err != nil {
		h.logger.Error("store read failed", "error", err)
		writeInternalError(w)
		return
	}

	idx := data.CommentIndex(id)
	if idx == -1 {
		writeError(w, http.StatusNotFound, "Not Found", "Comment not found")
		return
	}

	data.Comments = append(data.Comments[:idx], data.Comments[idx+1:]...)

	if err := h.store.Write(data); err != nil {
		h.logger.Error("store write failed", "error", err)
		writeInternalError(w)
		return
	}

	h.logger.Info("comment_deleted", "comment_id", id)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Comment deleted successfully"})
}
