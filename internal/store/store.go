// Package store implements the flat JSON document store backing the API.
//
// The entire dataset (users, posts, comments, issued tokens, id counters)
// lives in a single JSON document on disk. Handlers re-read the document at
// the start of every request and persist the whole document after every
// mutation; there is no indexing, batching or partial write.
//
// There is deliberately no mutual exclusion around the read-modify-write
// cycle: two concurrent requests can read the same counter value and assign
// the same id. The deployment model assumes a single instance with at most
// one writer at a time. Each Read returns an independently decoded document,
// so the race is a lost update, never shared-memory corruption.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/techwriters/workshop-api/internal/model"
)

// Counter namespaces within Data.Counters.
const (
	counterPostID    = "postId"
	counterCommentID = "commentId"
	counterUserID    = "userId"
	counterToken     = "token"
)

// Data is the complete document. Its JSON shape is the on-disk contract.
type Data struct {
	Users    []model.User           `json:"users"`
	Posts    []model.Post           `json:"posts"`
	Comments []model.Comment        `json:"comments"`
	Tokens   map[string]model.Token `json:"tokens"`
	Counters map[string]int         `json:"counters"`
}

// FindUser returns the user with the given id.
func (d *Data) FindUser(id int) (model.User, bool) {
	for _, u := range d.Users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// UserExists reports whether a user with the given id exists.
func (d *Data) UserExists(id int) bool {
	_, ok := d.FindUser(id)
	return ok
}

// PostIndex returns the index of the post with the given id, or -1.
func (d *Data) PostIndex(id int) int {
	for i, p := range d.Posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// PostExists reports whether a post with the given id exists.
func (d *Data) PostExists(id int) bool {
	return d.PostIndex(id) != -1
}

// CommentIndex returns the index of the comment with the given id, or -1.
func (d *Data) CommentIndex(id int) int {
	for i, c := range d.Comments {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// NextPostID returns the next post id and advances the counter.
func (d *Data) NextPostID() int {
	return d.next(counterPostID, 0)
}

// NextCommentID returns the next comment id and advances the counter.
// The counter is seeded lazily from the current maximum comment id.
func (d *Data) NextCommentID() int {
	max := 0
	for _, c := range d.Comments {
		if c.ID > max {
			max = c.ID
		}
	}
	return d.next(counterCommentID, max)
}

// NextUserID returns the next user id and advances the counter.
// The counter is seeded lazily from the current maximum user id.
func (d *Data) NextUserID() int {
	max := 0
	for _, u := range d.Users {
		if u.ID > max {
			max = u.ID
		}
	}
	return d.next(counterUserID, max)
}

// NextTokenSeq returns the next token sequence number and advances the
// counter. Combined with a timestamp it makes token strings unique even
// across rapid successive issuance.
func (d *Data) NextTokenSeq() int {
	return d.next(counterToken, 0)
}

// next returns the current counter value and post-increments it. A counter
// not yet present in the document starts at max+1.
func (d *Data) next(name string, max int) int {
	if d.Counters == nil {
		d.Counters = make(map[string]int)
	}
	n, ok := d.Counters[name]
	if !ok || n == 0 {
		n = max + 1
	}
	d.Counters[name] = n + 1
	return n
}

// Store reads and writes the backing file.
type Store struct {
	path   string
	opened bool
}

// New creates a Store backed by the file at path. Call Open before serving.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Open initializes the backing file. If it does not exist yet, the seed
// dataset is written. Open is idempotent: only the first call in a process
// lifetime does any work.
func (s *Store) Open() error {
	if s.opened {
		return nil
	}

	if _, err := os.Stat(s.path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", s.path, err)
		}
		if err := s.Write(Seed()); err != nil {
			return fmt.Errorf("seed store: %w", err)
		}
	}

	s.opened = true
	return nil
}

// Read decodes the backing file into a fresh document. Handlers call this
// before inspecting any state so that every request observes the latest
// on-disk state as of its own read.
func (s *Store) Read() (*Data, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	if d.Tokens == nil {
		d.Tokens = make(map[string]model.Token)
	}
	if d.Counters == nil {
		d.Counters = make(map[string]int)
	}

	return &d, nil
}

// Write serializes the complete document to the backing file. Every mutation
// ends with a Write; there are no partial writes.
func (s *Store) Write(d *Data) error {
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}

	return nil
}
