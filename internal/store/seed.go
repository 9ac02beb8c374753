package store

import "github.com/techwriters/workshop-api/internal/model"

// Seed returns the fixed initial dataset written when no backing file
// exists. The postId and token counters are seeded past the seed data's
// maximum ids; commentId and userId are initialized lazily on first use.
func Seed() *Data {
	return &Data{
		Users: []model.User{
			{ID: 1, Name: "John Doe", Email: "john@example.com", Role: model.RoleUser},
			{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: model.RoleUser},
			{ID: 3, Name: "Admin User", Email: "admin@example.com", Role: model.RoleAdmin},
		},
		Posts: []model.Post{
			{ID: 1, Title: "First Post", Body: "This is the first post", UserID: 1},
			{ID: 2, Title: "Second Post", Body: "This is the second post", UserID: 2},
		},
		Comments: []model.Comment{
			{ID: 1, PostID: 1, Name: "Commenter 1", Email: "comment1@example.com", Body: "Great post!"},
			{ID: 2, PostID: 1, Name: "Commenter 2", Email: "comment2@example.com", Body: "Thanks for sharing!"},
			{ID: 3, PostID: 2, Name: "Commenter 3", Email: "comment3@example.com", Body: "Interesting read."},
		},
		Tokens: map[string]model.Token{},
		Counters: map[string]int{
			counterPostID: 3,
			counterToken:  1,
		},
	}
}
