package auth

import (
	"context"

	"github.com/techwriters/workshop-api/internal/model"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// tokenContextKey is the context key for the verified token record.
const tokenContextKey contextKey = "token_record"

// ContextWithToken attaches a verified token record to the context.
func ContextWithToken(ctx context.Context, tok model.Token) context.Context {
	return context.WithValue(ctx, tokenContextKey, tok)
}

// TokenFromContext retrieves the verified token record from the context.
// ok is false if the auth middleware has not run.
func TokenFromContext(ctx context.Context) (model.Token, bool) {
	tok, ok := ctx.Value(tokenContextKey).(model.Token)
	return tok, ok
}
