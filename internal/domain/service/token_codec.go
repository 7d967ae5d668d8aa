package service

import "gateway/internal/domain/entity"

// TokenCodec encodes and decodes signed access tokens. Both directions are
// parameterized by the shared secret and signing algorithm fixed at
// construction time.
//
// Decode fails with a single generic error for every violation so callers
// cannot tell a bad signature from an expired timestamp.
type TokenCodec interface {
	// Encode serializes the claims, signs them, and returns the compact
	// token string.
	Encode(claims *entity.TokenClaims) (string, error)

	// Decode verifies the signature, structure, and expiry of a token string
	// and returns its claims.
	Decode(tokenString string) (*entity.TokenClaims, error)
}
