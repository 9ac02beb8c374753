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

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(st *store.Store, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		store:  st,
		logger: logger,
	}
}

// List handles GET /users. Admin users are excluded from the public listing.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	data, err := h.store.Read()
	if err != nil {
		h.logger.Error("store read failed", "error", err)
		writeInternalError(w)
		return
	}

	users := make([]model.User, 0, len(data.Users))
	for _, u := range data.Users {
		if !u.IsAdmin() {
			users = append(users, u)
		}
	}

	writeJSON(w, http.StatusOK, users)
}

// ListAdmins handles GET /users/admin (bearer token required).
func (h *UserHandler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	data, err := h.store.Read()
	if err != nil {
		h.logger.Error("store read failed", "error", err)
		writeInternalError(w)
		return
	}

	admins := make([]model.User, 0)
	for _, u := range data.Users {
		if u.IsAdmin() {
			admins = append(admins, u)
		}
	}

	writeJSON(w, http.StatusOK, admins)
}

// ListAll handles GET /api/v1/users (bearer token required). Unlike the
// public listing, admins are included.
func (h *UserHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	data, err := h.store.Read()
	if err != nil {
		h.logger.Error("store read failed", "error", err)
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, data.Users)
}

// Get handles GET /users/{userID}. Admin users yield the same 404 as an
// unknown id so their existence cannot be probed through this endpoint.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not Found", "User not found")
		return
	}

	data, err := h.store.Read()
	if err != nil {
		h.logger.Error("store read failed", "error", err)
		writeInternalError(w)
		return
	}

	user, ok := data.FindUser(id)
	if !ok || user.IsAdmin() {
		writeError(w, http.StatusNotFound, "Not Found", "User not found")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Create handles POST /users. New users always get the "user" role.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	if req.Name == nil || req.Name == "" || req.Email == nil || req.Email == "" {
		writeError(w, http.StatusBadRequest, "Bad Request", "Missing required fields: name and email are required")
		return
	}

	name, nameOK := req.Name.(string)
	email, emailOK := req.Email.(string)
	if !nameOK || !emailOK {
		writeError(w, http.StatusBadRequest, "Bad Request", "Invalid field types: name and email must be strings")
		return
	}

	data, err := h.store.Read()
	if err != nil {
		h.logger.Error("store read failed", "error", err)
		writeInternalError(w)
		return
	}

	user := model.User{
		ID:    data.NextUserID(),
		Name:  name,
		Email: email,
		Role:  model.RoleUser,
	}
	data.Users = append(data.Users, user)

	if err := h.store.Write(data); err != nil {
		h.logger.Error("store write failed", "error", err)
		writeInternalError(w)
		return
	}

	h.logger.Info("user_created", "user_id", user.ID)

	writeJSON(w, http.StatusCreated, user)
}
