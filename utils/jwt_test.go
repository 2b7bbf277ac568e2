package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestInspectTokenReadsClaims(t *testing.T) {
	expiry := time.Now().Add(5 * time.Minute).Unix()
	token := signedToken(t, jwt.MapClaims{
		"preferred_username": "root.admin",
		"exp":                expiry,
	})

	identity, err := InspectToken(token)
	require.NoError(t, err)
	require.Equal(t, "root.admin", identity.Username)
	require.Equal(t, time.Unix(expiry, 0), identity.ExpiresAt)
}

func TestInspectTokenWithoutExpiry(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"preferred_username": "root.admin"})
	_, err := InspectToken(token)
	require.Error(t, err)
}

func TestInspectTokenRejectsGarbage(t *testing.T) {
	_, err := InspectToken("not-a-jwt")
	require.Error(t, err)
}
