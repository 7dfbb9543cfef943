package models

import "github.com/golang-jwt/jwt/v5"

// Token is a panel access token.
//
// It embeds [jwt.RegisteredClaims] so it can be passed directly to
// jwt.ParseWithClaims. SignedString holds the compact serialized form ready
// for the Authorization header.
type Token struct {
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
