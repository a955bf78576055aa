package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_RoundTrip(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)

	tok, err := iss.Issue(42, "a@x.com")
	require.NoError(t, err)

	claims, err := iss.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestIssuer_RejectsWrongSecret(t *testing.T) {
	tok, err := NewIssuer("one", time.Hour).Issue(1, "a@x.com")
	require.NoError(t, err)

	_, err = NewIssuer("two", time.Hour).Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_RejectsExpired(t *testing.T) {
	iss := NewIssuer("secret", time.Minute)
	iss.now = func() time.Time { return time.Now().Add(-time.Hour) }

	tok, err := iss.Issue(1, "a@x.com")
	require.NoError(t, err)

	iss.now = time.Now
	_, err = iss.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_RejectsNoneAlgorithm(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": 1, "email": "a@x.com"})
	s, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewIssuer("secret", time.Hour).Parse(s)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_RejectsGarbage(t *testing.T) {
	_, err := NewIssuer("secret", time.Hour).Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
