package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/techwriters/workshop-api/internal/auth"
	"github.com/techwriters/workshop-api/internal/store"
)

func newAuthedStore(t *testing.T) (*store.Store, string) {
	t.Helper()

	s := store.New(filepath.Join(t.TempDir(), "db.json"))
	if err := s.Open(); err != nil {
		t.Fatalf("open store: %v", err)
	}

	data, err := s.Read()
	if err != nil {
		t.Fatalf("read store: %v", err)
	}
	tok := auth.Mint(data.NextTokenSeq(), "")
	data.Tokens[tok.AccessToken] = tok
	if err := s.Write(data); err != nil {
		t.Fatalf("write store: %v", err)
	}

	return s, tok.AccessToken
}

func newAuthMiddleware(s *store.Store) func(http.Handler) http.Handler {
	return Auth(AuthConfig{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Store:  s,
	})
}

func TestAuth_MissingHeader(t *testing.T) {
	s, _ := newAuthedStore(t)

	handler := newAuthMiddleware(s)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["error"] != "Unauthorized" {
		t.Errorf("unexpected error: %s", body["error"])
	}
	if body["message"] != "Missing or invalid authorization header" {
		t.Errorf("unexpected message: %s", body["message"])
	}
}

func TestAuth_NonBearerHeader(t *testing.T) {
	s, _ := newAuthedStore(t)

	handler := newAuthMiddleware(s)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestAuth_UnknownToken(t *testing.T) {
	s, _ := newAuthedStore(t)

	handler := newAuthMiddleware(s)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer wks_token_99_0")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["message"] != "Invalid token" {
		t.Errorf("unexpected message: %s", body["message"])
	}
}

func TestAuth_ValidTokenReachesHandler(t *testing.T) {
	s, token := newAuthedStore(t)

	var gotToken string
	handler := newAuthMiddleware(s)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec, ok := auth.TokenFromContext(r.Context())
		if !ok {
			t.Error("expected token record in context")
		}
		gotToken = rec.AccessToken
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if gotToken != token {
		t.Errorf("expected context token %s, got %s", token, gotToken)
	}
}
