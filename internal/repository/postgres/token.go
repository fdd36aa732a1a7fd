package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/edupost/edupost-server/internal/model"
)

var _ model.IssuedTokenStore = (*TokenRepository)(nil)

type TokenRepository struct {
	db *Connection
}

func NewTokenRepository(db *Connection) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Add(ctx context.Context, token model.IssuedToken) error {
	const query = `
        INSERT INTO user_tokens (user_id, token_hash, created_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, token_hash) DO NOTHING
    `

	if _, err := r.db.Exec(ctx, query, token.UserID, token.TokenHash, token.CreatedAt); err != nil {
		return fmt.Errorf("failed to add token: %w", err)
	}
	return nil
}

func (r *TokenRepository) Exists(ctx context.Context, userID uuid.UUID, tokenHash []byte) (bool, error) {
	const query = `
        SELECT EXISTS (SELECT 1 FROM user_tokens WHERE user_id = $1 AND token_hash = $2)
    `

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, tokenHash).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check token: %w", err)
	}
	return exists, nil
}

func (r *TokenRepository) Remove(ctx context.Context, userID uuid.UUID, tokenHash []byte) error {
	const query = `
        DELETE FROM user_tokens WHERE user_id = $1 AND token_hash = $2
    `

	tag, err := r.db.Exec(ctx, query, userID, tokenHash)
	if err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
