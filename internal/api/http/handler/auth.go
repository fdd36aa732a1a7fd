package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/edupost/edupost-server/internal/api/http/response"
	"github.com/edupost/edupost-server/internal/apierrors"
	"github.com/edupost/edupost-server/internal/logger"
	"github.com/edupost/edupost-server/internal/model"
)

// AuthService defines registration, login and logout operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.User, string, error)
	Login(ctx context.Context, email, password string) (model.User, string, error)
	Logout(ctx context.Context, userID uuid.UUID, token string) error
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register creates a user account.
// @Summary Register a user
// @Description Creates a teacher or student account and returns it with a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/auth/register [post]
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	h.logger.Debug("Auth handler: processing registration request",
		"username", req.Username,
		"email", req.Email)

	user, token, err := h.authService.Register(r.Context(), model.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	h.logger.Info("Auth handler: user registered",
		"user_id", user.ID,
		"role", user.Role)

	response.JSON(w, http.StatusCreated, AuthResponse{User: newUserResponse(user), Token: token})
}

// Login authenticates by e-mail and password.
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} response.Message
// @Router /api/auth/login [post]
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}
	if err := validate(req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, AuthResponse{User: newUserResponse(user), Token: token})
}

// Logout revokes the token the request was authenticated with.
// @Summary Log out
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Message
// @Router /api/auth/logout [post]
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, apierrors.NewErrAuthenticationRequired())
		return
	}
	token, ok := h.contextManager.GetTokenFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, apierrors.NewErrAuthenticationRequired())
		return
	}

	if err := h.authService.Logout(r.Context(), user.ID, token); err != nil {
		handleError(w, h.logger, err)
		return
	}

	h.logger.Info("Auth handler: user logged out", "user_id", user.ID)

	response.JSON(w, http.StatusOK, response.Message{Message: "Logged out successfully"})
}
