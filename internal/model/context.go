package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager stores the authenticated principal on a request context.
type ContextManager interface {
	SetUserToContext(ctx context.Context, user User) context.Context
	GetUserFromContext(ctx context.Context) (User, bool)
	SetTokenToContext(ctx context.Context, token string) context.Context
	GetTokenFromContext(ctx context.Context) (string, bool)
	// SetActorToContext overrides the identity checked against post ownership.
	SetActorToContext(ctx context.Context, actorID uuid.UUID) context.Context
	GetActorFromContext(ctx context.Context) (uuid.UUID, bool)
}
