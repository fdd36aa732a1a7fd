package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	httpcontext "github.com/edupost/edupost-server/internal/api/http/context"
	"github.com/edupost/edupost-server/internal/model"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (model.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.User), args.Error(1)
}

type mockAuthorResolver struct {
	mock.Mock
}

func (m *mockAuthorResolver) ResolveAuthor(ctx context.Context, rawID string) (model.User, error) {
	args := m.Called(ctx, rawID)
	return args.Get(0).(model.User), args.Error(1)
}

func testUser(role model.Role) model.User {
	return model.User{ID: uuid.New(), Username: "user", Role: role}
}

// captureHandler records the user and token seen by the next handler.
type captureHandler struct {
	cm     *httpcontext.Manager
	called bool
	user   model.User
	token  string
	body   []byte

	actor    uuid.UUID
	hasActor bool
}

func (h *captureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.user, _ = h.cm.GetUserFromContext(r.Context())
	h.token, _ = h.cm.GetTokenFromContext(r.Context())
	h.actor, h.hasActor = h.cm.GetActorFromContext(r.Context())
	if r.Body != nil {
		buf := make([]byte, 1024)
		n, _ := r.Body.Read(buf)
		h.body = buf[:n]
	}
	w.WriteHeader(http.StatusNoContent)
}

func serve(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
