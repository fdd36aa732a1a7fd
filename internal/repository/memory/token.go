package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/edupost/edupost-server/internal/model"
)

var _ model.IssuedTokenStore = (*TokenRepository)(nil)

type TokenRepository struct {
	s *Store
}

func NewTokenRepository(s *Store) *TokenRepository {
	return &TokenRepository{s: s}
}

func (r *TokenRepository) Add(_ context.Context, token model.IssuedToken) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	set, ok := r.s.tokens[token.UserID]
	if !ok {
		set = make(map[string]model.IssuedToken)
		r.s.tokens[token.UserID] = set
	}
	set[string(token.TokenHash)] = token
	return nil
}

func (r *TokenRepository) Exists(_ context.Context, userID uuid.UUID, tokenHash []byte) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.tokens[userID][string(tokenHash)]
	return ok, nil
}

func (r *TokenRepository) Remove(_ context.Context, userID uuid.UUID, tokenHash []byte) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	set := r.s.tokens[userID]
	if _, ok := set[string(tokenHash)]; !ok {
		return model.ErrNotFound
	}
	delete(set, string(tokenHash))
	return nil
}
