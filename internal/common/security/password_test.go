package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) *PasswordHasher {
	t.Helper()
	h, err := NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func TestNewPasswordHasher_DefaultsAndClamps(t *testing.T) {
	h, err := NewPasswordHasher(0)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, h.Cost())

	h, err = NewPasswordHasher(1)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, h.Cost())
}

func TestHashPassword_RoundTrip(t *testing.T) {
	h := newTestHasher(t)

	hash, err := h.HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.True(t, h.CheckPasswordHash("s3cret", hash))
	assert.False(t, h.CheckPasswordHash("S3cret", hash))
	assert.False(t, h.CheckPasswordHash("s3cret", "not-a-hash"))
}

func TestHashPassword_Salted(t *testing.T) {
	h := newTestHasher(t)

	a, err := h.HashPassword("same")
	require.NoError(t, err)
	b, err := h.HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, h.CheckPasswordHash("same", a))
	assert.True(t, h.CheckPasswordHash("same", b))
}

func TestHashPassword_UsesConfiguredCost(t *testing.T) {
	h, err := NewPasswordHasher(bcrypt.MinCost + 1)
	require.NoError(t, err)

	hash, err := h.HashPassword("pw")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)
}

func TestBurnCompare_DoesNotPanic(t *testing.T) {
	h := newTestHasher(t)
	h.BurnCompare("anything")
}
