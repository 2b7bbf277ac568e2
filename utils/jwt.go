package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenIdentity holds display-oriented claims read from an IdP access token.
// The token is issued and verified by the identity provider; the gateway only
// inspects it, so the claims are parsed without signature verification.
type TokenIdentity struct {
	Username  string
	ExpiresAt time.Time
}

// InspectToken extracts the preferred username and expiry from an access token.
func InspectToken(tokenString string) (*TokenIdentity, error) {
	parser := jwt.Parser{}
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, err
	}

	identity := &TokenIdentity{}
	if username, ok := claims["preferred_username"].(string); ok {
		identity.Username = username
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, errors.New("token does not contain a valid 'exp' claim")
	}
	identity.ExpiresAt = time.Unix(int64(exp), 0)

	return identity, nil
}
