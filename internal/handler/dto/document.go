package dto

// CreateDocumentRequest carries the fields for the ephemeral document
// endpoint. Category is optional and defaults server-side.
type CreateDocumentRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}
