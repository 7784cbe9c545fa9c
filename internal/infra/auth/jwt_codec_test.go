package auth

import (
	"testing"
	"time"

	"kinoauth/config"
	domainerrors "kinoauth/internal/domain/errors"
	"kinoauth/internal/domain/entity"
	"kinoauth/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCodecForTest(t *testing.T, accessTTL, refreshTTL time.Duration) service.TokenCodec {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  accessTTL,
			RefreshTokenTTL: refreshTTL,
		},
	}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"

	codec, err := NewJWTCodec(cfg)
	require.NoError(t, err)

	return codec
}

func TestNewJWTCodec_MissingSecrets(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{}}

	_, err := NewJWTCodec(cfg)

	assert.Error(t, err)
}

func TestJWTCodec_AccessTokenRoundTrip(t *testing.T) {
	codec := newCodecForTest(t, 2*time.Hour, 14*24*time.Hour)
	deviceID := uuid.New()
	roles := entity.Roles{entity.RoleUser, entity.RoleAdmin}

	token, err := codec.IssueAccessToken("alice", deviceID, roles)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := codec.VerifyAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, "alice", payload.Subject)
	assert.Equal(t, deviceID, payload.DeviceID)
	assert.Equal(t, roles, payload.Roles)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), payload.ExpiresAt, 5*time.Second)
}

func TestJWTCodec_RefreshTokenRoundTrip(t *testing.T) {
	codec := newCodecForTest(t, 2*time.Hour, 14*24*time.Hour)
	deviceID := uuid.New()

	token, err := codec.IssueRefreshToken("alice", deviceID)
	require.NoError(t, err)

	payload, err := codec.VerifyRefreshToken(token)
	require.NoError(t, err)

	assert.Equal(t, "alice", payload.Subject)
	assert.Equal(t, deviceID, payload.DeviceID)
	assert.WithinDuration(t, time.Now().Add(14*24*time.Hour), payload.ExpiresAt, 5*time.Second)
}

func TestJWTCodec_ExpiredToken(t *testing.T) {
	codec := newCodecForTest(t, -time.Minute, -time.Minute)

	token, err := codec.IssueAccessToken("alice", uuid.New(), entity.Roles{entity.RoleUser})
	require.NoError(t, err)

	_, err = codec.VerifyAccessToken(token)

	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestJWTCodec_CrossTypeVerificationFails(t *testing.T) {
	codec := newCodecForTest(t, 2*time.Hour, 14*24*time.Hour)
	deviceID := uuid.New()

	accessToken, err := codec.IssueAccessToken("alice", deviceID, entity.Roles{entity.RoleUser})
	require.NoError(t, err)
	refreshToken, err := codec.IssueRefreshToken("alice", deviceID)
	require.NoError(t, err)

	// Separate secrets per token kind: the signature check rejects the swap
	// before the type claim is even looked at.
	_, err = codec.VerifyRefreshToken(accessToken)
	assert.ErrorIs(t, err, domainerrors.ErrTokenSignatureInvalid)

	_, err = codec.VerifyAccessToken(refreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrTokenSignatureInvalid)
}

func TestJWTCodec_TamperedSignature(t *testing.T) {
	codec := newCodecForTest(t, 2*time.Hour, 14*24*time.Hour)

	token, err := codec.IssueAccessToken("alice", uuid.New(), entity.Roles{entity.RoleUser})
	require.NoError(t, err)

	cfg := &config.Config{
		Auth: &config.AuthConfig{AccessTokenTTL: 2 * time.Hour, RefreshTokenTTL: time.Hour},
	}
	cfg.SecretKey.Access = "another-access-secret"
	cfg.SecretKey.Refresh = "another-refresh-secret"
	foreign, err := NewJWTCodec(cfg)
	require.NoError(t, err)

	_, err = foreign.VerifyAccessToken(token)

	assert.ErrorIs(t, err, domainerrors.ErrTokenSignatureInvalid)
}

func TestJWTCodec_MalformedToken(t *testing.T) {
	codec := newCodecForTest(t, 2*time.Hour, 14*24*time.Hour)

	_, err := codec.VerifyAccessToken("not-a-jwt-at-all")

	assert.ErrorIs(t, err, domainerrors.ErrTokenMalformed)
}

func TestJWTCodec_TTLAccessors(t *testing.T) {
	codec := newCodecForTest(t, 2*time.Hour, 14*24*time.Hour)

	assert.Equal(t, 2*time.Hour, codec.AccessTokenTTL())
	assert.Equal(t, 14*24*time.Hour, codec.RefreshTokenTTL())
}
