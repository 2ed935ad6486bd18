package application

import (
	"crypto/sha256"
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// TokenService issues and verifies the signed bearer token for the single
// administrative identity. Tokens are stateless HS256 JWTs; there is no
// server-side token store and no revocation, so a token stays valid until it
// expires. If multi-admin or revocation is ever needed this is the seam to
// swap in a token registry.
type TokenService struct {
	secret       []byte
	username     string
	password     string
	passwordHash string
	ttl          time.Duration
	now          func() time.Time
}

// TokenServiceOption customises a TokenService.
type TokenServiceOption func(*TokenService)

// WithClock overrides the time source, used by tests to exercise expiry.
func WithClock(now func() time.Time) TokenServiceOption {
	return func(s *TokenService) { s.now = now }
}

// NewTokenService creates a TokenService for the configured admin credential.
// passwordHash is an optional bcrypt hash; when non-empty it is checked
// instead of the plaintext password.
func NewTokenService(secret []byte, username, password, passwordHash string, ttl time.Duration, opts ...TokenServiceOption) *TokenService {
	s := &TokenService{
		secret:       secret,
		username:     username,
		password:     password,
		passwordHash: passwordHash,
		ttl:          ttl,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue validates the credential pair and returns a signed token embedding
// the subject, issue time, and expiry. Both fields are always compared in
// constant time before the combined result is checked, so a mismatch leaks
// nothing about which field was wrong.
func (s *TokenService) Issue(username, password string) (string, error) {
	userOK := constantTimeEqual(username, s.username)

	var passOK bool
	if s.passwordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) == nil
	} else {
		passOK = constantTimeEqual(password, s.password)
	}

	if !userOK || !passOK {
		return "", ErrUnauthorized
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return signed, nil
}

// Verify checks the token's signature and expiry and returns the embedded
// subject. Malformed, tampered, wrong-key, and expired tokens all fail with
// ErrUnauthorized.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrUnauthorized
	}

	return claims.Subject, nil
}

// constantTimeEqual compares two strings without early exit. Hashing first
// keeps the comparison length-independent.
func constantTimeEqual(a, b string) bool {
	ha := sha256.Sum256([]byte(a))
	hb := sha256.Sum256([]byte(b))
	return subtle.ConstantTimeCompare(ha[:], hb[:]) == 1
}
