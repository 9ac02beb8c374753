package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/techwriters/workshop-api/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "db.json"))
}

func TestStore_OpenSeedsMissingFile(t *testing.T) {
	s := newTestStore(t)

	if err := s.Open(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := os.Stat(s.Path()); err != nil {
		t.Fatalf("expected backing file to exist, got %v", err)
	}

	data, err := s.Read()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(data.Users) != 3 {
		t.Errorf("expected 3 seed users, got %d", len(data.Users))
	}
	if len(data.Posts) != 2 {
		t.Errorf("expected 2 seed posts, got %d", len(data.Posts))
	}
	if len(data.Comments) != 3 {
		t.Errorf("expected 3 seed comments, got %d", len(data.Comments))
	}
	if len(data.Tokens) != 0 {
		t.Errorf("expected empty token map, got %d entries", len(data.Tokens))
	}
	if data.Counters["postId"] != 3 {
		t.Errorf("expected postId counter 3, got %d", data.Counters["postId"])
	}
	if data.Counters["token"] != 1 {
		t.Errorf("expected token counter 1, got %d", data.Counters["token"])
	}
}

func TestStore_OpenPreservesExistingFile(t *testing.T) {
	s := newTestStore(t)

	if err := s.Open(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	data, err := s.Read()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	data.Posts = append(data.Posts, model.Post{ID: 99, Title: "kept", Body: "kept", UserID: 1})
	if err := s.Write(data); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// A fresh Store over the same file must not reseed it.
	s2 := New(s.Path())
	if err := s2.Open(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	data2, err := s2.Read()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if data2.PostIndex(99) == -1 {
		t.Error("expected existing data to survive Open")
	}
}

func TestStore_OpenIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		if err := s.Open(); err != nil {
			t.Fatalf("Open call %d: expected no error, got %v", i, err)
		}
	}
}

func TestStore_WriteReadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	if err := s.Open(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	data, err := s.Read()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	data.Tokens["wks_token_1_1700000000000"] = model.Token{
		AccessToken: "wks_token_1_1700000000000",
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		Scope:       "read:data write:data",
		CreatedAt:   1700000000000,
	}
	if err := s.Write(data); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := s.Read()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	tok, ok := got.Tokens["wks_token_1_1700000000000"]
	if !ok {
		t.Fatal("expected token to survive the round trip")
	}
	if tok.Scope != "read:data write:data" {
		t.Errorf("unexpected scope: %s", tok.Scope)
	}
	if tok.CreatedAt != 1700000000000 {
		t.Errorf("unexpected created_at: %d", tok.CreatedAt)
	}
}

func TestData_NextPostIDIsMonotonic(t *testing.T) {
	data := Seed()

	first := data.NextPostID()
	second := data.NextPostID()

	if first != 3 {
		t.Errorf("expected first post id 3, got %d", first)
	}
	if second != 4 {
		t.Errorf("expected second post id 4, got %d", second)
	}
}

func TestData_NextCommentIDLazyInit(t *testing.T) {
	data := Seed()

	// Not seeded in counters: starts past the max existing comment id.
	if id := data.NextCommentID(); id != 4 {
		t.Errorf("expected first comment id 4, got %d", id)
	}
	if id := data.NextCommentID(); id != 5 {
		t.Errorf("expected second comment id 5, got %d", id)
	}
}

func TestData_NextUserIDLazyInit(t *testing.T) {
	data := Seed()

	if id := data.NextUserID(); id != 4 {
		t.Errorf("expected first user id 4, got %d", id)
	}
	if id := data.NextUserID(); id != 5 {
		t.Errorf("expected second user id 5, got %d", id)
	}
}

func TestData_NextTokenSeq(t *testing.T) {
	data := Seed()

	if seq := data.NextTokenSeq(); seq != 1 {
		t.Errorf("expected first token seq 1, got %d", seq)
	}
	if seq := data.NextTokenSeq(); seq != 2 {
		t.Errorf("expected second token seq 2, got %d", seq)
	}
}

func TestData_Lookups(t *testing.T) {
	data := Seed()

	if !data.UserExists(1) {
		t.Error("expected user 1 to exist")
	}
	if data.UserExists(999) {
		t.Error("did not expect user 999 to exist")
	}
	if !data.PostExists(2) {
		t.Error("expected post 2 to exist")
	}
	if idx := data.PostIndex(999); idx != -1 {
		t.Errorf("expected -1 for unknown post, got %d", idx)
	}
	if idx := data.CommentIndex(3); idx == -1 {
		t.Error("expected comment 3 to be found")
	}
}
