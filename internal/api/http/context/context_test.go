package context

import (
	stdctx "context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/edupost/edupost-server/internal/model"
)

func TestManager_SetAndGetUser(t *testing.T) {
	m := NewManager()
	user := model.User{ID: uuid.New(), Role: model.RoleTeacher}

	ctx := m.SetUserToContext(stdctx.Background(), user)

	got, ok := m.GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, user, got)
}

func TestManager_GetUser_NotFound(t *testing.T) {
	m := NewManager()

	_, ok := m.GetUserFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_SetAndGetToken(t *testing.T) {
	m := NewManager()

	ctx := m.SetTokenToContext(stdctx.Background(), "tok")
	got, ok := m.GetTokenFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "tok", got)

	_, ok = m.GetTokenFromContext(m.SetTokenToContext(stdctx.Background(), ""))
	assert.False(t, ok)
}

func TestManager_KeysDoNotCollide(t *testing.T) {
	m := NewManager()
	ctx := stdctx.WithValue(stdctx.Background(), "user", "spoofed") //nolint:staticcheck

	_, ok := m.GetUserFromContext(ctx)
	assert.False(t, ok)
}

func TestManager_SetAndGetActor(t *testing.T) {
	m := NewManager()

	_, ok := m.GetActorFromContext(stdctx.Background())
	assert.False(t, ok)

	actorID := uuid.New()
	got, ok := m.GetActorFromContext(m.SetActorToContext(stdctx.Background(), actorID))
	assert.True(t, ok)
	assert.Equal(t, actorID, got)

	got, ok = m.GetActorFromContext(m.SetActorToContext(stdctx.Background(), uuid.Nil))
	assert.True(t, ok)
	assert.Equal(t, uuid.Nil, got)
}
