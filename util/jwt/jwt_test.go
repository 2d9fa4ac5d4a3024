package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, token, secret string) (*jwtlib.Token, error) {
	t.Helper()
	return jwtlib.Parse(token, func(tok *jwtlib.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwtlib.WithValidMethods([]string{"HS256"}))
}

func TestIssue_ClaimsRoundTrip(t *testing.T) {
	token, err := Issue("secret", 42, "budi@example.com", 24)
	require.NoError(t, err)

	parsed, err := parse(t, token, "secret")
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	require.True(t, ok)
	require.Equal(t, float64(42), claims["sub"])
	require.Equal(t, "budi@example.com", claims["email"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	require.Greater(t, int64(exp), time.Now().Unix())
}

func TestIssue_WrongSecretRejected(t *testing.T) {
	token, err := Issue("secret", 42, "budi@example.com", 1)
	require.NoError(t, err)

	_, err = parse(t, token, "other")
	require.Error(t, err)
}
