package service

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/edupost/edupost-server/internal/logger"
	"github.com/edupost/edupost-server/internal/model"
)

// TokenService issues, resolves and revokes bearer tokens. It composes the
// TokenSigner with the IssuedTokenStore so that logout invalidates a token.
type TokenService struct {
	signer            model.TokenSigner
	store             model.IssuedTokenStore
	enforceRevocation bool
	logger            *logger.Logger
}

func NewTokenService(signer model.TokenSigner, store model.IssuedTokenStore, enforceRevocation bool, logger *logger.Logger) *TokenService {
	return &TokenService{
		signer:            signer,
		store:             store,
		enforceRevocation: enforceRevocation,
		logger:            logger,
	}
}

// Issue signs a token for userID and records it as live.
func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := s.signer.Issue(userID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	issued := model.IssuedToken{
		UserID:    userID,
		TokenHash: hashToken(token),
		CreatedAt: time.Now(),
	}
	if err := s.store.Add(ctx, issued); err != nil {
		return "", fmt.Errorf("persist token: %w", err)
	}

	return token, nil
}

// Resolve verifies token and returns its subject. With revocation enforced a
// token that is no longer in the subject's live set is rejected.
func (s *TokenService) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := s.signer.Verify(token)
	if err != nil {
		return uuid.Nil, err
	}

	if !s.enforceRevocation {
		return userID, nil
	}

	live, err := s.store.Exists(ctx, userID, hashToken(token))
	if err != nil {
		return uuid.Nil, fmt.Errorf("check token: %w", err)
	}
	if !live {
		return uuid.Nil, model.ErrTokenRevoked
	}

	return userID, nil
}

// Revoke removes token from userID's live set. Removing an unknown token is
// not an error.
func (s *TokenService) Revoke(ctx context.Context, userID uuid.UUID, token string) error {
	err := s.store.Remove(ctx, userID, hashToken(token))
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func hashToken(token string) []byte {
	h := sha256.Sum256([]byte(token))
	return h[:]
}
