package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

const bearerScheme = "Bearer"

// DefaultTokenTTL is the validity window of issued tokens.
const DefaultTokenTTL = 24 * time.Hour

// Identity is the verified caller of a request. It can only be obtained from
// TokenService.Verify, so holding one means the token checked out.
type Identity struct {
	email     string
	issuedAt  time.Time
	expiresAt time.Time
}

func (i Identity) Email() string        { return i.email }
func (i Identity) IssuedAt() time.Time  { return i.issuedAt }
func (i Identity) ExpiresAt() time.Time { return i.expiresAt }

type tokenClaims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// TokenService issues and verifies HS256 tokens carrying an email claim.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService. A non-positive ttl falls back to DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token secret must not be empty")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a fresh token for email.
func (s *TokenService) Issue(email string) (string, error) {
	now := s.now()
	claims := tokenClaims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			Subject:   email,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks an Authorization header value of the form "Bearer <token>".
// A missing or malformed header yields ErrUnauthorized; a token that does not verify yields ErrForbidden.
func (s *TokenService) Verify(authorizationHeader string) (Identity, error) {
	raw, err := bearerToken(authorizationHeader)
	if err != nil {
		return Identity{}, err
	}

	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrForbidden
	}
	if claims.Email == "" || claims.ExpiresAt == 0 {
		return Identity{}, ErrForbidden
	}

	return Identity{
		email:     claims.Email,
		issuedAt:  time.Unix(claims.IssuedAt, 0),
		expiresAt: time.Unix(claims.ExpiresAt, 0),
	}, nil
}

func bearerToken(header string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrUnauthorized
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrUnauthorized
	}
	return token, nil
}
