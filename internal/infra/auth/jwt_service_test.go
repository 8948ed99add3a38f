package auth

import (
	"testing"
	"time"

	"rpromo/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{TokenTTL: time.Hour}

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(testJWTConfig(""))
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("test-secret"))
	require.NoError(t, err)

	accountID := uuid.New()
	token, err := svc.Generate(accountID, "operador")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, "operador", claims.Username)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testJWTConfig("secret-a"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testJWTConfig("secret-b"))
	require.NoError(t, err)

	token, err := issuer.Generate(uuid.New(), "operador")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate("not.a.token")
	assert.Error(t, err)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(4)

	hash, err := hasher.Hash("senha-forte")
	require.NoError(t, err)
	assert.NotEqual(t, "senha-forte", hash)

	assert.True(t, hasher.Check("senha-forte", hash))
	assert.False(t, hasher.Check("senha-errada", hash))
}
