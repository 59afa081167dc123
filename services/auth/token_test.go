package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokens(t *testing.T) *TokenService {
	t.Helper()
	svc, err := NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)
	return svc
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := newTestTokens(t)

	token, err := svc.Issue("a@x.com")
	require.NoError(t, err)

	id, err := svc.Verify("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", id.Email())
	assert.WithinDuration(t, id.IssuedAt().Add(time.Hour), id.ExpiresAt(), time.Second)
}

func TestTokenService_MissingOrMalformedHeader(t *testing.T) {
	svc := newTestTokens(t)

	for _, header := range []string{"", "Bearer", "Bearer ", "Token abc", "abc"} {
		_, err := svc.Verify(header)
		assert.ErrorIs(t, err, ErrUnauthorized, "header %q", header)
	}
}

func TestTokenService_InvalidToken(t *testing.T) {
	svc := newTestTokens(t)
	other, err := NewTokenService("other-secret", time.Hour)
	require.NoError(t, err)

	foreign, err := other.Issue("a@x.com")
	require.NoError(t, err)

	_, err = svc.Verify("Bearer " + foreign)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Verify("Bearer not.a.jwt")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc := newTestTokens(t)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.Issue("a@x.com")
	require.NoError(t, err)

	_, err = svc.Verify("Bearer " + token)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTokenService_RejectsTokenWithoutEmail(t *testing.T) {
	svc := newTestTokens(t)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify("Bearer " + signed)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	_, err := NewTokenService("", time.Hour)
	assert.Error(t, err)

	svc, err := NewTokenService("s", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenTTL, svc.ttl)
}
