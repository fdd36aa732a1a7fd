package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/edupost/edupost-server/internal/model"
)

func TestBcrypt_HashVerify(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, h.Verify(hash, "password123"))
	assert.ErrorIs(t, h.Verify(hash, "password124"), model.ErrPasswordMismatch)
}

func TestBcrypt_VerifyMalformedHash(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	err := h.Verify("not-a-hash", "password123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrPasswordMismatch)
}

func TestNewBcrypt_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, NewBcrypt(1).cost)
	assert.Equal(t, bcrypt.MaxCost, NewBcrypt(99).cost)
	assert.Equal(t, 8, NewBcrypt(8).cost)
}

func TestBcrypt_UsesConfiguredCost(t *testing.T) {
	h := NewBcrypt(5)

	hash, err := h.Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}
