package model

// Token is a bearer token record issued by the client-credentials exchange.
// ExpiresIn is descriptive only: nothing checks it against CreatedAt, so an
// issued token stays valid for the lifetime of the store. Known limitation.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
	CreatedAt   int64  `json:"created_at"` // epoch milliseconds
}
