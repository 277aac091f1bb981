// Package token issues and verifies the signed access tokens pickers carry
// between workstation login and the packing endpoints.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenIsInvalid is returned when a token fails signature or claim
// validation.
var ErrTokenIsInvalid = errors.New("token is invalid")

// Claims are the application claims carried in an access token. The
// workstation is the station the picker logged in at; roles gate the
// management endpoints.
type Claims struct {
	Username    string   `json:"username"`
	Workstation string   `json:"workstation,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Issuer creates and verifies HMAC signed access tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates a token issuer. The secret must be non-empty and the
// ttl positive.
func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("ttl")
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs an access token for the given picker.
func (i *Issuer) Issue(username, workstation string, roles []string, now time.Time) (string, error) {
	if username == "" {
		return "", errs.NewValueIsRequiredError("username")
	}

	claims := Claims{
		Username:    username,
		Workstation: workstation,
		Roles:       roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token and returns its claims.
func (i *Issuer) Verify(tokenString string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}
	if !parsed.Valid || claims.Username == "" {
		return Claims{}, ErrTokenIsInvalid
	}
	return claims, nil
}

// HasRole reports whether the claims carry the given role.
func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}
