package model

// Document is the ephemeral resource returned by the protected document
// endpoint. It is never written to the store; the endpoint is a stateless
// transform.
type Document struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at"`
}
