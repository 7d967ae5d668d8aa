// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"gateway/config"
	"gateway/internal/domain/entity"
	"gateway/internal/domain/service"
)

// ErrTokenInvalid is the single decode failure the codec reports. Signature,
// structure, and expiry violations all collapse into it so callers cannot
// probe which check failed.
var ErrTokenInvalid = errors.New("token is invalid")

// jwtCodec is a concrete implementation of the TokenCodec interface using the JWT standard.
// Tokens carry exactly two claims: `sub` (username) and `exp` (expiry).
type jwtCodec struct {
	secret []byte
	method jwt.SigningMethod
}

// NewJWTCodec is the constructor for jwtCodec. The secret and the HMAC
// algorithm name (HS256/HS384/HS512) come from configuration.
func NewJWTCodec(cfg *config.Config) (service.TokenCodec, error) {
	if cfg.Auth == nil || cfg.Auth.SecretKey == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	algorithm := cfg.Auth.Algorithm
	if algorithm == "" {
		algorithm = jwt.SigningMethodHS256.Alg()
	}

	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.Errorf("unsupported signing algorithm: %s", algorithm)
	}

	return &jwtCodec{
		secret: []byte(cfg.Auth.SecretKey),
		method: method,
	}, nil
}

// Encode serializes and signs the claims into the compact JWT representation.
func (c *jwtCodec) Encode(claims *entity.TokenClaims) (string, error) {
	token := jwt.NewWithClaims(c.method, jwt.MapClaims{
		"sub": claims.Subject,
		"exp": claims.ExpiresAt.Unix(),
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Decode verifies signature, structure, and expiry, and returns the claims.
// Every failure mode is reported as ErrTokenInvalid.
func (c *jwtCodec) Decode(tokenString string) (*entity.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, errors.WithStack(ErrTokenInvalid)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.WithStack(ErrTokenInvalid)
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.WithStack(ErrTokenInvalid)
	}

	expiry, err := mapClaims.GetExpirationTime()
	if err != nil || expiry == nil {
		return nil, errors.WithStack(ErrTokenInvalid)
	}

	return &entity.TokenClaims{
		Subject:   subject,
		ExpiresAt: expiry.Time,
	}, nil
}
