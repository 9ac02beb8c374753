package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/techwriters/workshop-api/internal/auth"
	"github.com/techwriters/workshop-api/internal/store"
)

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	Logger *slog.Logger
	Store  *store.Store
}

// Auth returns a middleware that authenticates requests with a bearer token.
// A token is valid exactly when it is present in the document store's token
// map; the record's expires_in is never checked. On success the token record
// is injected into the request context for downstream handlers.
func Auth(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "missing_token"),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthError(w, "Missing or invalid authorization header")
				return
			}

			data, err := cfg.Store.Read()
			if err != nil {
				cfg.Logger.Error("store error during auth",
					slog.String("error", err.Error()),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthError(w, "Invalid token")
				return
			}

			rec, ok := data.Tokens[token]
			if !ok {
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "unknown_token"),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthError(w, "Invalid token")
				return
			}

			ctx := auth.ContextWithToken(r.Context(), rec)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken returns the token from an "Authorization: Bearer <token>"
// header, or "" when the header is missing or differently shaped.
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// writeAuthError writes a 401 Unauthorized response.
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Unauthorized","message":"` + message + `"}`))
}
