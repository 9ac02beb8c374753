package dto

// CreatePostRequest carries the full field set required by POST and PUT.
// A zero value means the field was missing or empty, which fails validation
// either way.
type CreatePostRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

// PatchPostRequest carries the optional field set for PATCH. Nil pointers
// mark fields absent from the request body; absent fields keep their prior
// values. An id in the body is ignored.
type PatchPostRequest struct {
	Title  *string `json:"title"`
	Body   *string `json:"body"`
	UserID *int    `json:"userId"`
}
