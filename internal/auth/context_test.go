package auth

import (
	"context"
	"testing"
)

func TestTokenContextRoundTrip(t *testing.T) {
	tok := Mint(1, "")

	ctx := ContextWithToken(context.Background(), tok)

	got, ok := TokenFromContext(ctx)
	if !ok {
		t.Fatal("expected token in context")
	}
	if got.AccessToken != tok.AccessToken {
		t.Errorf("expected %s, got %s", tok.AccessToken, got.AccessToken)
	}
}

func TestTokenFromContext_Missing(t *testing.T) {
	_, ok := TokenFromContext(context.Background())
	if ok {
		t.Error("expected no token in empty context")
	}
}
