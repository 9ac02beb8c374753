package handler

import (
	"log/slog"
	"mime"
	"net/http"

	"github.com/techwriters/workshop-api/internal/auth"
	"github.com/techwriters/workshop-api/internal/handler/dto"
	"github.com/techwriters/workshop-api/internal/model"
	"github.com/techwriters/workshop-api/internal/store"
)

// OAuthHandler handles the client-credentials token exchange and token
// introspection.
type OAuthHandler struct {
	store        *store.Store
	logger       *slog.Logger
	clientID     string
	clientSecret string
}

// NewOAuthHandler creates a new OAuthHandler.
func NewOAuthHandler(st *store.Store, logger *slog.Logger, clientID, clientSecret string) *OAuthHandler {
	return &OAuthHandler{
		store:        st,
		logger:       logger,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// tokenInfoResponse is a token record with the introspection flag appended.
type tokenInfoResponse struct {
	model.Token
	Active bool `json:"active"`
}

// Token handles POST /oauth/token. Only the client_credentials grant with a
// form-encoded body is accepted; any other content type leaves the grant
// type empty and fails the grant check.
func (h *OAuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var grantType, clientID, clientSecret, scope string

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err == nil && mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err == nil {
			grantType = r.PostForm.Get("grant_type")
			clientID = r.PostForm.Get("client_id")
			clientSecret = r.PostForm.Get("client_secret")
			scope = r.PostForm.Get("scope")
		}
	}

	if grantType != "client_credentials" {
		writeOAuthError(w, http.StatusBadRequest, "unsupported_grant_type",
			"Only client_credentials grant type is supported")
		return
	}

	if !auth.VerifyClient(clientID, clientSecret, h.clientID, h.clientSecret) {
		h.logger.Warn("token request rejected", "reason", "invalid_client")
		writeOAuthError(w, http.StatusUnauthorized, "invalid_client",
			"Invalid client credentials")
		return
	}

	data, err := h.store.Read()
	if err != nil {
		h.logger.Error("store read failed", "error", err)
		writeInternalError(w)
		return
	}

	tok := auth.Mint(data.NextTokenSeq(), scope)
	data.Tokens[tok.AccessToken] = tok

	if err := h.store.Write(data); err != nil {
		h.logger.Error("store write failed", "error", err)
		writeInternalError(w)
		return
	}

	h.logger.Info("token_issued", "scope", tok.Scope)

	writeJSON(w, http.StatusOK, tok)
}

// TokenInfo handles GET /api/v1/oauth/token/info (bearer token required).
// Echoes the verified token record with active:true appended.
func (h *OAuthHandler) TokenInfo(w http.ResponseWriter, r *http.Request) {
	tok, ok := auth.TokenFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Invalid token")
		return
	}

	writeJSON(w, http.StatusOK, tokenInfoResponse{
		Token:  tok,
		Active: true,
	})
}

// writeOAuthError writes the RFC 6749 style error body.
func writeOAuthError(w http.ResponseWriter, status int, code, description string) {
	writeJSON(w, status, dto.OAuthErrorResponse{
		Error:            code,
		ErrorDescription: description,
	})
}
