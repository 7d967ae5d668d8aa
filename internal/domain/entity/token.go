package entity

import "time"

// TokenType is the constant token type returned with every issued token.
const TokenType = "Bearer"

// TokenClaims is the payload encoded into an access token: the subject
// (username) and the absolute expiry time. Subject must be non-empty and
// ExpiresAt must be in the future for a token to be usable.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// Token is the value returned to a client after a successful login. The
// access token is an opaque signed blob; the server keeps no state for it,
// so its lifetime is bounded only by the embedded expiry.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
