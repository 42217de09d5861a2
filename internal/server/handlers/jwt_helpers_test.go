package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	cfg := JWTConfig{
		Secret:         []byte("test-secret-key"),
		AccessTokenTTL: time.Hour,
	}

	token, expiresIn, err := GenerateAccessToken(cfg, "device-1", "laptop")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(3600), expiresIn)
}

func TestValidateAccessToken(t *testing.T) {
	cfg := JWTConfig{
		Secret:         []byte("test-secret-key"),
		AccessTokenTTL: time.Hour,
	}

	token, _, err := GenerateAccessToken(cfg, "device-1", "laptop")
	require.NoError(t, err)

	claims, err := ValidateAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "device-1", claims.DeviceID)
	assert.Equal(t, "laptop", claims.DeviceName)
	assert.Equal(t, "habitsync", claims.Issuer)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	cfg := JWTConfig{
		Secret:         []byte("test-secret-key"),
		AccessTokenTTL: time.Hour,
	}

	token, _, err := GenerateAccessToken(cfg, "device-1", "laptop")
	require.NoError(t, err)

	wrongCfg := JWTConfig{Secret: []byte("other-secret"), AccessTokenTTL: time.Hour}
	claims, err := ValidateAccessToken(wrongCfg, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	cfg := JWTConfig{
		Secret:         []byte("test-secret-key"),
		AccessTokenTTL: -time.Hour,
	}

	token, _, err := GenerateAccessToken(cfg, "device-1", "laptop")
	require.NoError(t, err)

	claims, err := ValidateAccessToken(cfg, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	cfg := JWTConfig{Secret: []byte("test-secret-key"), AccessTokenTTL: time.Hour}

	claims, err := ValidateAccessToken(cfg, "not-a-jwt")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
