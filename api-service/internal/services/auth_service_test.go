package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loc8r/api-service/internal/models"
	"loc8r/api-service/internal/utils"
)

func newAuthService() (*AuthService, *fakeUserRepo, *utils.JWTUtil) {
	repo := newFakeUserRepo()
	jwtUtil := utils.NewJWTUtil("test-secret")
	return NewAuthService(repo, jwtUtil), repo, jwtUtil
}

func TestRegister(t *testing.T) {
	svc, _, jwtUtil := newAuthService()

	token, err := svc.Register(context.Background(), "Simon", "simon@example.com", "s3cret")
	require.NoError(t, err)

	identity, err := jwtUtil.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "simon@example.com", identity.Email)
	assert.Equal(t, "Simon", identity.Name)
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _, _ := newAuthService()

	for _, args := range [][3]string{
		{"", "simon@example.com", "s3cret"},
		{"Simon", "", "s3cret"},
		{"Simon", "simon@example.com", ""},
	} {
		token, err := svc.Register(context.Background(), args[0], args[1], args[2])
		assert.ErrorIs(t, err, models.ErrValidation)
		assert.Empty(t, token)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthService()

	_, err := svc.Register(context.Background(), "Simon", "simon@example.com", "s3cret")
	require.NoError(t, err)

	token, err := svc.Register(context.Background(), "Other Simon", "simon@example.com", "different")
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
	assert.Empty(t, token)
}

func TestLogin(t *testing.T) {
	svc, _, jwtUtil := newAuthService()
	_, err := svc.Register(context.Background(), "Simon", "simon@example.com", "s3cret")
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "simon@example.com", "s3cret")
	require.NoError(t, err)

	identity, err := jwtUtil.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "Simon", identity.Name)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLogin_BadCredentials(t *testing.T) {
	svc, _, _ := newAuthService()
	_, err := svc.Register(context.Background(), "Simon", "simon@example.com", "s3cret")
	require.NoError(t, err)

	_, errUnknown := svc.Login(context.Background(), "nobody@example.com", "s3cret")
	_, errWrongPass := svc.Login(context.Background(), "simon@example.com", "wrong")

	assert.ErrorIs(t, errUnknown, models.ErrUnauthorized)
	assert.ErrorIs(t, errWrongPass, models.ErrUnauthorized)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}
