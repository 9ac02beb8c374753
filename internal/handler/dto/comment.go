package dto

// CreateCommentRequest carries the full field set required by POST and PUT.
type CreateCommentRequest struct {
	PostID int    `json:"postId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

// PatchCommentRequest carries the optional field set for PATCH. Nil pointers
// mark fields absent from the request body.
type PatchCommentRequest struct {
	PostID *int    `json:"postId"`
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Body   *string `json:"body"`
}
