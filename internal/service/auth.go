package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/edupost/edupost-server/internal/apierrors"
	"github.com/edupost/edupost-server/internal/logger"
	"github.com/edupost/edupost-server/internal/model"
	"github.com/edupost/edupost-server/internal/validation"
)

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	tokenStore model.IssuedTokenStore,
	signer model.TokenSigner,
	hasher model.PasswordHasher,
	enforceRevocation bool,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: NewTokenService(signer, tokenStore, enforceRevocation, logger),
		logger:       logger,
	}
}

type registerInput struct {
	Username string     `json:"username" validate:"required,min=3"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=6"`
	Name     string     `json:"name" validate:"required"`
	Role     model.Role `json:"role" validate:"oneof=teacher student"`
}

// Register creates an account and returns it with a fresh token.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.User, string, error) {
	in := registerInput{
		Username: strings.TrimSpace(params.Username),
		Email:    strings.ToLower(strings.TrimSpace(params.Email)),
		Password: params.Password,
		Name:     strings.TrimSpace(params.Name),
		Role:     params.Role,
	}
	if in.Role == "" {
		in.Role = model.RoleStudent
	}

	if verr := validation.ValidateStruct(&in); verr != nil {
		return model.User{}, "", apierrors.NewErrValidation(verr.First())
	}

	a.logger.Debug("Auth service: starting user registration",
		"username", in.Username,
		"email", in.Email)

	existing, err := a.userStore.GetByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to check existing user",
			"email", in.Email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing.ID != uuid.Nil {
		a.logger.Info("Auth service: user already exists",
			"email", in.Email,
			"username", in.Username)
		return model.User{}, "", apierrors.NewErrUserAlreadyExists()
	}

	hash, err := a.hasher.Hash(in.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", in.Email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		return model.User{}, "", apierrors.NewErrUserAlreadyExists()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", in.Email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", user.ID,
		"role", user.Role)

	return user, token, nil
}

// Login checks credentials and returns the user with a fresh token. Unknown
// email and wrong password are indistinguishable to the caller.
func (a *Auth) Login(ctx context.Context, email, password string) (model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login for unknown email",
			"email", email)
		return model.User{}, "", apierrors.NewErrLogin()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := a.hasher.Verify(user.PasswordHash, password); err != nil {
		if errors.Is(err, model.ErrPasswordMismatch) {
			a.logger.Info("Auth service: wrong password",
				"user_id", user.ID)
			return model.User{}, "", apierrors.NewErrLogin()
		}
		a.logger.Error("Auth service: failed to verify password",
			"user_id", user.ID,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to verify password: %w", err)
	}

	token, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// Logout revokes the token the request was authenticated with.
func (a *Auth) Logout(ctx context.Context, userID uuid.UUID, token string) error {
	if err := a.tokenService.Revoke(ctx, userID, token); err != nil {
		a.logger.Error("Auth service: failed to revoke token",
			"user_id", userID,
			"error", err.Error())
		return err
	}
	return nil
}

// Authenticate resolves a bearer token to its user. Bad, revoked and orphaned
// tokens are reported as the same authentication failure.
func (a *Auth) Authenticate(ctx context.Context, token string) (model.User, error) {
	userID, err := a.tokenService.Resolve(ctx, token)
	if errors.Is(err, model.ErrInvalidToken) || errors.Is(err, model.ErrTokenRevoked) {
		a.logger.Debug("Auth service: token rejected",
			"error", err.Error())
		return model.User{}, apierrors.NewErrAuthenticationRequired()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to resolve token",
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to resolve token: %w", err)
	}

	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: token subject no longer exists",
			"user_id", userID)
		return model.User{}, apierrors.NewErrAuthenticationRequired()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by id",
			"user_id", userID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// ResolveAuthor looks up the user named by a caller-supplied id. Used only by
// the legacy payload authorizer, where the id is not authenticated.
func (a *Auth) ResolveAuthor(ctx context.Context, rawID string) (model.User, error) {
	if rawID == "" {
		return model.User{}, apierrors.NewErrAuthorNotProvided()
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return model.User{}, apierrors.NewErrPermissionCheck(err)
	}

	user, err := a.userStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierrors.NewErrUserNotFound()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to resolve author",
			"author", rawID,
			"error", err.Error())
		return model.User{}, apierrors.NewErrPermissionCheck(err)
	}

	return user, nil
}
