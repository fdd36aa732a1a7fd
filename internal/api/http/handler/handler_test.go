package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/edupost/edupost-server/internal/model"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, params model.RegisterParams) (model.User, string, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.String(1), args.Error(2)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (model.User, string, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.User), args.String(1), args.Error(2)
}

func (m *mockAuthService) Logout(ctx context.Context, userID uuid.UUID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

type mockPostService struct {
	mock.Mock
}

func (m *mockPostService) List(ctx context.Context) ([]model.PostWithAuthor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.PostWithAuthor), args.Error(1)
}

func (m *mockPostService) Search(ctx context.Context, term string) ([]model.PostWithAuthor, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]model.PostWithAuthor), args.Error(1)
}

func (m *mockPostService) Get(ctx context.Context, id uuid.UUID) (model.PostWithAuthor, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.PostWithAuthor), args.Error(1)
}

func (m *mockPostService) Create(ctx context.Context, authorID uuid.UUID, params model.CreatePostParams) (model.Post, error) {
	args := m.Called(ctx, authorID, params)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *mockPostService) Update(ctx context.Context, actorID, id uuid.UUID, params model.UpdatePostParams) (model.Post, error) {
	args := m.Called(ctx, actorID, id, params)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *mockPostService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	args := m.Called(ctx, actorID, id)
	return args.Error(0)
}

func newRequest(method, target, body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(method, target, nil)
	}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}
