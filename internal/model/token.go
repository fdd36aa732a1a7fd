package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenSigner issues and verifies signed bearer tokens.
type TokenSigner interface {
	Issue(userID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}

// IssuedTokenStore keeps the set of live tokens per user. Tokens are
// stored as hashes only.
type IssuedTokenStore interface {
	Add(ctx context.Context, token IssuedToken) error
	Exists(ctx context.Context, userID uuid.UUID, tokenHash []byte) (bool, error)
	Remove(ctx context.Context, userID uuid.UUID, tokenHash []byte) error
}

// IssuedToken is a token handed out at register or login.
type IssuedToken struct {
	UserID    uuid.UUID
	TokenHash []byte
	CreatedAt time.Time
}
