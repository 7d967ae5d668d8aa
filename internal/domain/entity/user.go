// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Credential is a single record of the credential store: one password hash
// per username. It is read-only to the gateway; nothing here is ever written
// back.
type Credential struct {
	Username     string `bson:"username" json:"username"`
	PasswordHash string `bson:"password" json:"-"`
}

// AuthenticatedUser is the transient product of a successful login. It is
// consumed immediately to issue a token and never persisted.
//
// The stored hash is carried through only because the legacy call shape
// expects it; token issuance reads nothing but the username.
type AuthenticatedUser struct {
	Username     string
	PasswordHash string
}
