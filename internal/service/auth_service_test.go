package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/krit/mlbb-counter-website/internal/config"
	"github.com/krit/mlbb-counter-website/internal/service"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	return &config.Config{
		AdminPasswordHash:  string(hash),
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
	}
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc := service.NewAuthService(testConfig(t))

	token, err := svc.Login("hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", (*claims)["sub"])
	assert.NotEmpty(t, (*claims)["jti"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := service.NewAuthService(testConfig(t))

	_, err := svc.Login("wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	svc := service.NewAuthService(testConfig(t))

	other := testConfig(t)
	other.JWTSecret = "different-secret"
	foreign := service.NewAuthService(other)

	token, err := foreign.Login("hunter2")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
