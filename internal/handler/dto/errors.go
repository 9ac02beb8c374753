// Package dto defines request and response shapes for the HTTP API.
package dto

// ErrorResponse is the standard error body for non-OAuth endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// OAuthErrorResponse is the RFC 6749 style error body used by the token
// endpoint.
type OAuthErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
