package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpcontext "github.com/edupost/edupost-server/internal/api/http/context"
	"github.com/edupost/edupost-server/internal/apierrors"
	"github.com/edupost/edupost-server/internal/model"
	"github.com/edupost/edupost-server/internal/testutil"
)

func TestAuth_Register(t *testing.T) {
	user := model.User{ID: uuid.New(), Username: "ana", Email: "ana@example.com", Name: "Ana", Role: model.RoleTeacher}

	tests := []struct {
		name        string
		body        string
		setupMock   func(m *mockAuthService)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "success",
			body: `{"username":"ana","email":"ana@example.com","password":"secret1","name":"Ana","role":"teacher"}`,
			setupMock: func(m *mockAuthService) {
				m.On("Register", mock.Anything, model.RegisterParams{
					Username: "ana", Email: "ana@example.com", Password: "secret1", Name: "Ana", Role: model.RoleTeacher,
				}).Return(user, "tok", nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:        "malformed body",
			body:        `{"username":`,
			setupMock:   func(m *mockAuthService) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request body",
		},
		{
			name: "duplicate",
			body: `{"username":"ana","email":"ana@example.com","password":"secret1","name":"Ana"}`,
			setupMock: func(m *mockAuthService) {
				m.On("Register", mock.Anything, mock.Anything).
					Return(model.User{}, "", apierrors.NewErrUserAlreadyExists())
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "User with this email or username already exists",
		},
		{
			name: "unexpected failure",
			body: `{"username":"ana","email":"ana@example.com","password":"secret1","name":"Ana"}`,
			setupMock: func(m *mockAuthService) {
				m.On("Register", mock.Anything, mock.Anything).
					Return(model.User{}, "", errors.New("db down"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAuthService{}
			tt.setupMock(svc)
			h := NewAuth(svc, httpcontext.NewManager(), testutil.MakeNoopLogger())

			rec := httptest.NewRecorder()
			h.Register(rec, newRequest(http.MethodPost, "/api/auth/register", tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeBody[map[string]any](t, rec)["message"])
			} else {
				resp := decodeBody[AuthResponse](t, rec)
				assert.Equal(t, "tok", resp.Token)
				assert.Equal(t, user.ID.String(), resp.User.ID)
				assert.Equal(t, model.RoleTeacher, resp.User.Role)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestAuth_Login(t *testing.T) {
	user := model.User{ID: uuid.New(), Email: "ana@example.com", Role: model.RoleStudent}

	tests := []struct {
		name        string
		body        string
		setupMock   func(m *mockAuthService)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "success",
			body: `{"email":"ana@example.com","password":"secret1"}`,
			setupMock: func(m *mockAuthService) {
				m.On("Login", mock.Anything, "ana@example.com", "secret1").Return(user, "tok", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:        "missing password",
			body:        `{"email":"ana@example.com"}`,
			setupMock:   func(m *mockAuthService) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "password is required",
		},
		{
			name: "bad credentials",
			body: `{"email":"ana@example.com","password":"nope"}`,
			setupMock: func(m *mockAuthService) {
				m.On("Login", mock.Anything, "ana@example.com", "nope").
					Return(model.User{}, "", apierrors.NewErrLogin())
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid login credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAuthService{}
			tt.setupMock(svc)
			h := NewAuth(svc, httpcontext.NewManager(), testutil.MakeNoopLogger())

			rec := httptest.NewRecorder()
			h.Login(rec, newRequest(http.MethodPost, "/api/auth/login", tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeBody[map[string]any](t, rec)["message"])
			} else {
				assert.Equal(t, "tok", decodeBody[AuthResponse](t, rec).Token)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestAuth_Logout(t *testing.T) {
	user := model.User{ID: uuid.New()}

	t.Run("success", func(t *testing.T) {
		svc := &mockAuthService{}
		svc.On("Logout", mock.Anything, user.ID, "tok").Return(nil)
		cm := httpcontext.NewManager()
		h := NewAuth(svc, cm, testutil.MakeNoopLogger())

		req := newRequest(http.MethodPost, "/api/auth/logout", "")
		ctx := cm.SetUserToContext(req.Context(), user)
		req = req.WithContext(cm.SetTokenToContext(ctx, "tok"))

		rec := httptest.NewRecorder()
		h.Logout(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Logged out successfully", decodeBody[map[string]any](t, rec)["message"])
		svc.AssertExpectations(t)
	})

	t.Run("no principal", func(t *testing.T) {
		svc := &mockAuthService{}
		h := NewAuth(svc, httpcontext.NewManager(), testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Logout(rec, newRequest(http.MethodPost, "/api/auth/logout", ""))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything, mock.Anything)
	})
}
