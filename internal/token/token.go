// Package token issues and verifies the bearer tokens that carry a user's
// identity and role between requests. Tokens are HS256-signed JWTs with a
// fixed lifetime; nothing is stored server-side.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ryuzenazari/hmptiunesa/internal/authz"
)

// ErrInvalidToken covers every verification failure: bad signature, expiry,
// malformed payload or missing claims. Callers treat them all the same way.
var ErrInvalidToken = errors.New("invalid or expired token")

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with a shared secret. The secret is
// injected once at construction and read-only afterwards.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// New returns an Issuer for the given secret and token lifetime.
func New(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("signing secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %v", ttl)
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue creates a signed token embedding the user id and role, valid from
// now until now + ttl.
func (i *Issuer) Issue(userID string, role authz.Role) (string, error) {
	now := time.Now()
	c := claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return tok.SignedString(i.secret)
}

// Verify checks the signature and expiry and returns the embedded user id
// and role. It does not consult any store; the authentication gate is
// responsible for resolving the id to a live user.
func (i *Issuer) Verify(tokenString string) (string, authz.Role, error) {
	var c claims
	tok, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if t.Method == nil || t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		// A token without an exp claim would otherwise verify and never expire.
		jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	role := authz.Role(c.Role)
	if c.Subject == "" || !role.Valid() {
		return "", "", fmt.Errorf("%w: missing or malformed claims", ErrInvalidToken)
	}
	return c.Subject, role, nil
}
