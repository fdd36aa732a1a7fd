package context

import (
	"context"

	"github.com/google/uuid"

	"github.com/edupost/edupost-server/internal/model"
)

type contextKey int

const (
	userKey contextKey = iota
	tokenKey
	actorKey
)

// Manager stores the authenticated principal on request contexts.
type Manager struct{}

var _ model.ContextManager = (*Manager)(nil)

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a copy of ctx carrying user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns the user set by an authentication middleware.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey).(model.User)
	return user, ok
}

// SetTokenToContext returns a copy of ctx carrying the raw bearer token.
func (m *Manager) SetTokenToContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// GetTokenFromContext returns the bearer token the request was authenticated with.
func (m *Manager) GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

// SetActorToContext returns a copy of ctx whose ownership checks use actorID
// instead of the authenticated user's id.
func (m *Manager) SetActorToContext(ctx context.Context, actorID uuid.UUID) context.Context {
	return context.WithValue(ctx, actorKey, actorID)
}

// GetActorFromContext returns the ownership identity, if one was set.
func (m *Manager) GetActorFromContext(ctx context.Context) (uuid.UUID, bool) {
	actorID, ok := ctx.Value(actorKey).(uuid.UUID)
	return actorID, ok
}
