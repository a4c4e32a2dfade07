package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-coreapi/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken is returned when a token string cannot be decoded as a
// JWT claim set.
var ErrMalformedToken = errors.New("malformed token")

// ReadClaimsUnverified decodes tokenString as a JWT and returns its registered
// claims WITHOUT verifying the signature.
//
// The client does not hold the CoreAPI signing key; the claims are only good
// for deciding when a cached token must be replaced. Never use the result to
// make an authentication or authorization decision.
//
// Returns an error wrapping [ErrMalformedToken] if tokenString is empty, is
// not three dot-separated segments, its header/payload are not valid
// base64url JSON, or its "exp" claim is not numeric. The other registered
// claims are copied only when they carry the expected string type.
//
// Example usage:
//
//	tok, err := utils.ReadClaimsUnverified(raw)
//	if err != nil || tok.ExpiredAt(time.Now()) {
//	    // obtain a new token
//	}
func ReadClaimsUnverified(tokenString string) (models.Token, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return models.Token{}, fmt.Errorf("%w: empty token", ErrMalformedToken)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return models.Token{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	registered := jwt.RegisteredClaims{
		ExpiresAt: exp,
		Subject:   stringClaim(claims, "sub"),
		Issuer:    stringClaim(claims, "iss"),
		ID:        stringClaim(claims, "jti"),
	}
	// iat/nbf are informational here; a bad type must not block the exp check.
	if iat, err := claims.GetIssuedAt(); err == nil {
		registered.IssuedAt = iat
	}
	if nbf, err := claims.GetNotBefore(); err == nil {
		registered.NotBefore = nbf
	}
	if aud, err := claims.GetAudience(); err == nil {
		registered.Audience = aud
	}

	return models.Token{RegisteredClaims: registered, SignedString: tokenString}, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}

// BearerHeader formats token as an Authorization header value.
func BearerHeader(token string) string {
	return "Bearer " + strings.TrimSpace(token)
}
