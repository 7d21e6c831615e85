package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	m, err := NewManager(Config{Secret: "test-secret", Issuer: "aixos-fire", TTL: time.Hour})
	require.NoError(t, err)

	token, err := m.Generate(42, "agent")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "agent", claims.Role)
}

func TestVerifyExpiredToken(t *testing.T) {
	m, err := NewManager(Config{Secret: "test-secret", Issuer: "aixos-fire", TTL: -time.Minute})
	require.NoError(t, err)

	token, err := m.Generate(1, "customer")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer, err := NewManager(Config{Secret: "secret-a", Issuer: "aixos-fire", TTL: time.Hour})
	require.NoError(t, err)
	verifier, err := NewManager(Config{Secret: "secret-b", Issuer: "aixos-fire", TTL: time.Hour})
	require.NoError(t, err)

	token, err := issuer.Generate(7, "admin")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewManagerRequiresSecret(t *testing.T) {
	_, err := NewManager(Config{})
	assert.Error(t, err)
}
