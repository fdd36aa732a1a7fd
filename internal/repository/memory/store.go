// Package memory keeps every entity in process memory. It backs local runs
// without a database and the end-to-end HTTP tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/edupost/edupost-server/internal/model"
)

var (
	_ model.Pinger   = (*Store)(nil)
	_ model.Resetter = (*Store)(nil)
)

// Store holds the shared state behind the memory repositories.
type Store struct {
	mu     sync.RWMutex
	users  map[uuid.UUID]model.User
	posts  map[uuid.UUID]model.Post
	tokens map[uuid.UUID]map[string]model.IssuedToken
}

func NewStore() *Store {
	s := &Store{}
	s.reset()
	return s
}

func (s *Store) Ping(context.Context) error {
	return nil
}

func (s *Store) Reset(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	return nil
}

func (s *Store) reset() {
	s.users = make(map[uuid.UUID]model.User)
	s.posts = make(map[uuid.UUID]model.Post)
	s.tokens = make(map[uuid.UUID]map[string]model.IssuedToken)
}
