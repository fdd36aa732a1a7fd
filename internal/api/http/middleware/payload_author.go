package middleware

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/edupost/edupost-server/internal/api/http/response"
	"github.com/edupost/edupost-server/internal/apierrors"
	"github.com/edupost/edupost-server/internal/logger"
	"github.com/edupost/edupost-server/internal/metrics"
	"github.com/edupost/edupost-server/internal/model"
)

const (
	// AuthorHeader carries the caller id in legacy payload mode.
	AuthorHeader = "X-User-Id"

	maxBodyBytes = 1 << 20
)

// AuthorResolver looks up a user by an unauthenticated id.
type AuthorResolver interface {
	ResolveAuthor(ctx context.Context, rawID string) (model.User, error)
}

// PayloadAuthor identifies the caller from a user id sent in the request
// instead of a bearer token. The id is not authenticated: any client may
// act as any user. Only mounted in legacy payload mode.
type PayloadAuthor struct {
	resolver       AuthorResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewPayloadAuthor(resolver AuthorResolver, contextManager model.ContextManager, logger *logger.Logger) *PayloadAuthor {
	return &PayloadAuthor{resolver: resolver, contextManager: contextManager, logger: logger}
}

// Handler resolves the caller from body "author", then query "author", then
// the X-User-Id header, and puts the resolved user on the context.
//
// Ownership is checked against the body author only. When the id came from
// the query or the header, the actor is set to uuid.Nil, which owns nothing.
func (m *PayloadAuthor) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		author, err := authorFromRequest(r)
		if err != nil {
			response.Error(w, m.logger, err)
			return
		}

		user, err := m.resolver.ResolveAuthor(r.Context(), author.id)
		if err != nil {
			deny(w, m.logger, metrics.GuardPayloadAuthor, err)
			return
		}

		actorID := uuid.Nil
		if author.fromBody {
			actorID = user.ID
		}

		ctx := m.contextManager.SetUserToContext(r.Context(), user)
		ctx = m.contextManager.SetActorToContext(ctx, actorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type requestAuthor struct {
	id       string
	fromBody bool
}

// authorFromRequest reads the author id and restores the body for the
// downstream handler. Bodies that are not JSON objects carry no author.
// A body author that is neither a string nor null fails the permission check.
func authorFromRequest(r *http.Request) (requestAuthor, error) {
	if r.Body != nil && r.Body != http.NoBody {
		raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			return requestAuthor{}, apierrors.NewErrInvalidRequestBody(err)
		}
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(raw))

		var payload struct {
			Author json.RawMessage `json:"author"`
		}
		if json.Unmarshal(raw, &payload) == nil && len(payload.Author) > 0 && string(payload.Author) != "null" {
			var id string
			if err := json.Unmarshal(payload.Author, &id); err != nil {
				return requestAuthor{}, apierrors.NewErrPermissionCheck(
					fmt.Errorf("author must be a string, got %s", payload.Author))
			}
			if id != "" {
				return requestAuthor{id: id, fromBody: true}, nil
			}
		}
	}

	if author := r.URL.Query().Get("author"); author != "" {
		return requestAuthor{id: author}, nil
	}

	return requestAuthor{id: r.Header.Get(AuthorHeader)}, nil
}
