package auth

import (
	"strings"
	"testing"
	"time"

	"qna/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(time.Hour))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.Issue(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Validate(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(time.Hour))
	assert.NoError(t, err)

	// Clearly non-JWT format
	claims, err := jwtService.Validate("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_TamperedToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(time.Hour))
	assert.NoError(t, err)

	token, err := jwtService.Issue(uuid.New())
	assert.NoError(t, err)

	// Flip the signature segment; the token must no longer verify.
	parts := strings.Split(token, ".")
	assert.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	claims, err := jwtService.Validate(tampered)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig(time.Hour))
	assert.NoError(t, err)

	otherCfg := testConfig(time.Hour)
	otherCfg.SecretKey.Access = "a_completely_different_signing_secret"
	verifier, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	token, err := issuer.Issue(uuid.New())
	assert.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_UnboundedLifetimeWhenTTLUnset(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(0))
	assert.NoError(t, err)

	userID := uuid.New()
	token, err := jwtService.Issue(userID)
	assert.NoError(t, err)

	// No exp claim: the token stays valid.
	claims, err := jwtService.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	shortLived, err := NewJWTService(testConfig(time.Nanosecond))
	assert.NoError(t, err)

	token, err := shortLived.Issue(uuid.New())
	assert.NoError(t, err)

	time.Sleep(time.Second + 50*time.Millisecond)

	claims, err := shortLived.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
