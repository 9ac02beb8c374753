package model

// Post represents a blog post. UserID must reference an existing User at
// write time; deleting that user later does not cascade.
type Post struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}
