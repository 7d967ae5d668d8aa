package auth

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gateway/config"
	"gateway/internal/domain/entity"
	"gateway/internal/domain/service"
)

func newTestCodec(t *testing.T, secret string) service.TokenCodec {
	t.Helper()

	codec, err := NewJWTCodec(&config.Config{
		Auth: &config.AuthConfig{SecretKey: secret},
	})
	require.NoError(t, err)

	return codec
}

func TestJWTCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec(t, "test-secret")

	expiresAt := time.Now().Add(30 * time.Minute)
	signed, err := codec.Encode(&entity.TokenClaims{
		Subject:   "alice",
		ExpiresAt: expiresAt,
	})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := codec.Decode(signed)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt, time.Second)
}

func TestJWTCodec_Decode_Expired(t *testing.T) {
	codec := newTestCodec(t, "test-secret")

	signed, err := codec.Encode(&entity.TokenClaims{
		Subject:   "alice",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)

	_, err = codec.Decode(signed)
	assert.True(t, errors.Is(err, ErrTokenInvalid))
}

func TestJWTCodec_Decode_TamperedSignature(t *testing.T) {
	codec := newTestCodec(t, "test-secret")

	signed, err := codec.Encode(&entity.TokenClaims{
		Subject:   "alice",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	// Flip the last character of the signature.
	tampered := signed[:len(signed)-1]
	if signed[len(signed)-1] == 'a' {
		tampered += "b"
	} else {
		tampered += "a"
	}

	_, err = codec.Decode(tampered)
	assert.True(t, errors.Is(err, ErrTokenInvalid))
}

func TestJWTCodec_Decode_WrongSecret(t *testing.T) {
	codec := newTestCodec(t, "test-secret")
	other := newTestCodec(t, "another-secret")

	signed, err := other.Encode(&entity.TokenClaims{
		Subject:   "alice",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	_, err = codec.Decode(signed)
	assert.True(t, errors.Is(err, ErrTokenInvalid))
}

func TestJWTCodec_Decode_Garbage(t *testing.T) {
	codec := newTestCodec(t, "test-secret")

	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		_, err := codec.Decode(tokenString)
		assert.True(t, errors.Is(err, ErrTokenInvalid), "token %q should be rejected", tokenString)
	}
}

func TestNewJWTCodec_EmptySecret(t *testing.T) {
	_, err := NewJWTCodec(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)

	_, err = NewJWTCodec(&config.Config{})
	assert.Error(t, err)
}

func TestNewJWTCodec_UnsupportedAlgorithm(t *testing.T) {
	_, err := NewJWTCodec(&config.Config{
		Auth: &config.AuthConfig{SecretKey: "test-secret", Algorithm: "RS256"},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported signing algorithm")
}

func TestNewJWTCodec_DefaultsToHS256(t *testing.T) {
	codec := newTestCodec(t, "test-secret")

	signed, err := codec.Encode(&entity.TokenClaims{
		Subject:   "alice",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	// HS256 compact tokens start with the fixed {"alg":"HS256","typ":"JWT"} header.
	assert.Equal(t, "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9", signed[:36])
}
