// Package auth provides token issuance and verification helpers for the
// client-credentials flow.
package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/techwriters/workshop-api/internal/model"
)

const (
	// TokenType is the only token type ever issued.
	TokenType = "Bearer"

	// TokenTTLSeconds is the advertised token lifetime. It is returned in
	// every token record but never enforced on verification.
	TokenTTLSeconds = 3600

	// DefaultScope is used when the token request carries no scope.
	DefaultScope = "read:data write:data"

	tokenPrefix = "wks_token"
)

// Mint builds a new token record. seq comes from the document's token
// counter, so two tokens issued within the same millisecond still get
// distinct access_token strings.
func Mint(seq int, scope string) model.Token {
	now := time.Now().UnixMilli()
	if scope == "" {
		scope = DefaultScope
	}
	return model.Token{
		AccessToken: fmt.Sprintf("%s_%d_%d", tokenPrefix, seq, now),
		TokenType:   TokenType,
		ExpiresIn:   TokenTTLSeconds,
		Scope:       scope,
		CreatedAt:   now,
	}
}

// VerifyClient compares presented client credentials against the configured
// pair in constant time.
func VerifyClient(gotID, gotSecret, wantID, wantSecret string) bool {
	idOK := subtle.ConstantTimeCompare([]byte(gotID), []byte(wantID)) == 1
	secretOK := subtle.ConstantTimeCompare([]byte(gotSecret), []byte(wantSecret)) == 1
	return idOK && secretOK
}
