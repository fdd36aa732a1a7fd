package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edupost/edupost-server/internal/logger"
)

func TestLogging_Handler(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantMsg   string
		wantLevel string
	}{
		{name: "success", status: http.StatusOK, wantMsg: "HTTP request completed", wantLevel: "level=INFO"},
		{name: "client error", status: http.StatusNotFound, wantMsg: "HTTP request completed", wantLevel: "level=INFO"},
		{name: "server error", status: http.StatusInternalServerError, wantMsg: "HTTP request failed", wantLevel: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			mw := NewLogging(logger.NewWithWriter(&buf, int(slog.LevelInfo)))

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			rec := httptest.NewRecorder()
			mw.Handler(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			out := buf.String()
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, out, tt.wantMsg)
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, "path=/health")
			assert.Contains(t, out, "method=GET")
		})
	}
}

func TestLogging_DefaultStatus(t *testing.T) {
	var buf bytes.Buffer
	mw := NewLogging(logger.NewWithWriter(&buf, int(slog.LevelInfo)))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	mw.Handler(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, buf.String(), "status=200")
}
