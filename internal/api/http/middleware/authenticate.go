package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/edupost/edupost-server/internal/api/http/response"
	"github.com/edupost/edupost-server/internal/apierrors"
	"github.com/edupost/edupost-server/internal/logger"
	"github.com/edupost/edupost-server/internal/metrics"
	"github.com/edupost/edupost-server/internal/model"
)

// AuthService resolves bearer tokens to users.
type AuthService interface {
	Authenticate(ctx context.Context, token string) (model.User, error)
}

// Authenticate validates bearer tokens and injects the user into the context.
type Authenticate struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authService: authService, contextManager: contextManager, logger: logger}
}

// Handler rejects the request with 401 unless it carries a valid bearer token.
func (m *Authenticate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if tokenString == "" {
			deny(w, m.logger, metrics.GuardAuthenticate, apierrors.NewErrAuthenticationRequired())
			return
		}

		user, err := m.authService.Authenticate(r.Context(), tokenString)
		if err != nil {
			deny(w, m.logger, metrics.GuardAuthenticate, err)
			return
		}

		ctx := m.contextManager.SetUserToContext(r.Context(), user)
		ctx = m.contextManager.SetTokenToContext(ctx, tokenString)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// deny writes err and counts it against guard when it is a client-facing
// rejection.
func deny(w http.ResponseWriter, log *logger.Logger, guard string, err error) {
	if apiErr, ok := apierrors.As(err); ok && apiErr.Status < http.StatusInternalServerError {
		metrics.RecordGuardDenial(guard, apiErr.Status)
	}
	response.Error(w, log, err)
}
