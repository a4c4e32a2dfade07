package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a CoreAPI bearer token together with what could be read from its
// claim set.
//
// The claims are read WITHOUT signature verification; ExpiresAt is only good
// enough to decide when the cached token should be replaced and must never be
// treated as proof of authenticity.
type Token struct {
	// RegisteredClaims holds the standard claim set (exp, iat, sub, ...) decoded
	// from the token payload.
	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature) exactly as
	// issued by iam.auth.jwt.authenticate.
	SignedString string `json:"-"`
}

// Expiry returns the "exp" claim and true, or the zero time and false when the
// claim set carries no expiry.
func (t *Token) Expiry() (time.Time, bool) {
	if t.ExpiresAt == nil {
		return time.Time{}, false
	}
	return t.ExpiresAt.Time, true
}

// ExpiredAt reports whether the token is expired at now. A token is expired
// only when now is strictly after its "exp" claim; a token without "exp"
// counts as expired.
func (t *Token) ExpiredAt(now time.Time) bool {
	exp, ok := t.Expiry()
	if !ok {
		return true
	}
	return now.After(exp)
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
