package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	jwtUtil := NewJWTUtil("test-secret")

	token, err := jwtUtil.GenerateToken(Identity{UserID: "abc123", Email: "simon@example.com", Name: "Simon"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := jwtUtil.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "abc123", identity.UserID)
	assert.Equal(t, "simon@example.com", identity.Email)
	assert.Equal(t, "Simon", identity.Name)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := NewJWTUtil("secret-one").GenerateToken(Identity{Email: "simon@example.com"})
	require.NoError(t, err)

	_, err = NewJWTUtil("secret-two").ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := NewJWTUtil("test-secret").ParseToken("not.a.token")
	assert.Error(t, err)
}
