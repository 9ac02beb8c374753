package dto

// CreateUserRequest carries the signup fields. The fields are deliberately
// untyped so the handler can distinguish a missing field from one of the
// wrong type and report each with its own message.
type CreateUserRequest struct {
	Name  any `json:"name"`
	Email any `json:"email"`
}
