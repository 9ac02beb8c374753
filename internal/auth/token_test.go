package auth

import (
	"strings"
	"testing"
)

func TestMint_TokenFormat(t *testing.T) {
	tok := Mint(7, "")

	if !strings.HasPrefix(tok.AccessToken, "wks_token_7_") {
		t.Errorf("unexpected access token format: %s", tok.AccessToken)
	}
	if tok.TokenType != "Bearer" {
		t.Errorf("expected token_type Bearer, got %s", tok.TokenType)
	}
	if tok.ExpiresIn != 3600 {
		t.Errorf("expected expires_in 3600, got %d", tok.ExpiresIn)
	}
	if tok.CreatedAt == 0 {
		t.Error("expected created_at to be set")
	}
}

func TestMint_DefaultScope(t *testing.T) {
	tok := Mint(1, "")
	if tok.Scope != "read:data write:data" {
		t.Errorf("expected default scope, got %s", tok.Scope)
	}
}

func TestMint_ExplicitScope(t *testing.T) {
	tok := Mint(1, "read:data")
	if tok.Scope != "read:data" {
		t.Errorf("expected requested scope, got %s", tok.Scope)
	}
}

func TestMint_SequenceKeepsTokensDistinct(t *testing.T) {
	// Two mints in the same millisecond differ by sequence number.
	a := Mint(1, "")
	b := Mint(2, "")
	if a.AccessToken == b.AccessToken {
		t.Errorf("expected distinct tokens, both were %s", a.AccessToken)
	}
}

func TestVerifyClient(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		secret string
		want   bool
	}{
		{"valid pair", "workshop_client_12345", "secret_abc123xyz789", true},
		{"wrong id", "other_client", "secret_abc123xyz789", false},
		{"wrong secret", "workshop_client_12345", "wrong", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VerifyClient(tt.id, tt.secret, "workshop_client_12345", "secret_abc123xyz789")
			if got != tt.want {
				t.Errorf("VerifyClient = %v, want %v", got, tt.want)
			}
		})
	}
}
