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

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(st *store.Store, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		store:  st,
		logger: logger,
	}
}

// List handles GET /posts.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	data, err := h.store.Read()
	if err != nil {
		h.logger.Error("store read failed", "error", err)
		writeInternalError(w)
		return
	}

	posts := data.Posts
	if posts == nil {
		posts = []model.Post{}
	}
	writeJSON(w, http.StatusOK, posts)
}

// Get handles GET /posts/{postID}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "postID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not Found", "Post not found")
		return
	}

	data, err := h.store.Read()
	if err != nil {
		h.logger.Error("store read failed", "error", err)
		writeInternalError(w)
		return
	}

	idx := data.PostIndex(id)
	if idx == -1 {
		writeError(w, http.StatusNotFound, "Not Found", "Post not found")
		return
	}

	writeJSON(w, http.StatusOK, data.Posts[idx])
}

// Create handles POST /posts. Required fields are checked before the store
// is read; the referential check on userId needs the document.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	if req.Title == "" || req.Body == "" || req.UserID == 0 {
		writeError(w, http.StatusBadRequest, "Bad Request", "Missing required fields: title, body, userId")
		return
	}

	data, err := h.store.Read()
	if err != nil {
		h.logger.Error("store read failed", "error", err)
		writeInternalError(w)
		return
	}

	if !data.UserExists(req.UserID) {
		writeError(w, http.StatusBadRequest, "Bad Request", "Invalid userId: user does not exist")
		return
	}

	post := model.Post{
		ID:     data.NextPostID(),
		Title:  req.Title,
		Body:   req.Body,
		UserID: req.UserID,
	}
	data.Posts = append(data.Posts, post)

	if err := h.store.Write(data); err != nil {
		h.logger.Error("store write failed", "error", err)
		writeInternalError(w)
		return
	}

	h.logger.Info("post_created", "post_id", post.ID, "user_id", post.UserID)

	writeJSON(w, http.StatusCreated, post)
}

// Replace handles PUT /posts/{postID}. Existence is checked before the
// required-field and referential validation; the id always comes from the
// path.
func (h *PostHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "postID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not Found", "Post not found")
		return
	}

	var req dto.CreatePostRequest
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

	idx := data.PostIndex(id)
	if idx == -1 {
		writeError(w, http.StatusNotFound, "Not Found", "Post not found")
		return
	}

	if req.Title == "" || req.Body == "" || req.UserID == 0 {
		writeError(w, http.StatusBadRequest, "Bad Request", "Missing required fields: title, body, userId")
		return
	}

	if !data.UserExists(req.UserID) {
		writeError(w, http.StatusBadRequest, "Bad Request", "Invalid userId: user does not exist")
		return
	}

	data.Posts[idx] = model.Post{
		ID:     id,
		Title:  req.Title,
		Body:   req.Body,
		UserID: req.UserID,
	}

	if err := h.store.Write(data); err != nil {
		h.logger.Error("store write failed", "error", err)
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, data.Posts[idx])
}

// Update handles PATCH /posts/{postID}. Only fields present in the body are
// validated and applied; the id never changes.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "postID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not Found", "Post not found")
		return
	}

	var req dto.PatchPostRequest
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

	idx := data.PostIndex(id)
	if idx == -1 {
		writeError(w, http.StatusNotFound, "Not Found", "Post not found")
		return
	}

	if req.UserID != nil && !data.UserExists(*req.UserID) {
		writeError(w, http.StatusBadRequest, "Bad Request", "Invalid userId: user does not exist")
		return
	}

	post := data.Posts[idx]
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Body != nil {
		post.Body = *req.Body
	}
	if req.UserID != nil {
		post.UserID = *req.UserID
	}
	post.ID = id
	data.Posts[idx] = post

	if err := h.store.Write(data); err != nil {
		h.logger.Error("store write failed", "error", err)
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// Delete handles DELETE /posts/{postID}. Comments referencing the post are
// left in place; referential checks happen at write time only.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "postID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not Found", "Post not found")
		return
	}

	data, err := h.store.Read()
	if err != nil {
		h.logger.Error("store read failed", "error", err)
		writeInternalError(w)
		return
	}

	idx := data.PostIndex(id)
	if idx == -1 {
		writeError(w, http.StatusNotFound, "Not Found", "Post not found")
		return
	}

	data.Posts = append(data.Posts[:idx], data.Posts[idx+1:]...)

	if err := h.store.Write(data); err != nil {
		h.logger.Error("store write failed", "error", err)
		writeInternalError(w)
		return
	}

	h.logger.Info("post_deleted", "post_id", id)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
}
