package middleware

import (
	"net/http"

	"github.com/edupost/edupost-server/internal/apierrors"
	"github.com/edupost/edupost-server/internal/logger"
	"github.com/edupost/edupost-server/internal/metrics"
	"github.com/edupost/edupost-server/internal/model"
)

// Authorize checks the role of the user placed on the context by an
// earlier middleware.
type Authorize struct {
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuthorize(contextManager model.ContextManager, logger *logger.Logger) *Authorize {
	return &Authorize{contextManager: contextManager, logger: logger}
}

// RequireRole lets the request through only when the user has role.
func (m *Authorize) RequireRole(role model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := m.contextManager.GetUserFromContext(r.Context())
			if !ok {
				deny(w, m.logger, metrics.GuardRole, apierrors.NewErrAuthenticationRequired())
				return
			}

			if user.Role != role {
				m.logger.Info("HTTP: role check failed",
					"user_id", user.ID,
					"role", user.Role,
					"required", role)
				deny(w, m.logger, metrics.GuardRole, apierrors.NewErrRoleRequired(role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
