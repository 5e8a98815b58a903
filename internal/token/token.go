// Package token issues and verifies the stateless bearer tokens handed out
// by the account endpoints.
package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for tokens that fail signature or shape checks.
var ErrInvalidToken = errors.New("invalid token")

// UserClaim identifies the account a token was issued for. The id is the hex
// form of the store-assigned identifier; the string form keeps the claim
// stable across the wire regardless of the store's native id type.
type UserClaim struct {
	ID string `json:"id"`
}

// Claims is the canonical payload signed into every token: {"user":{"id":...}}.
type Claims struct {
	jwt.RegisteredClaims
	User UserClaim `json:"user"`
}

// Issuer signs and parses account tokens with a process-wide HS256 secret.
type Issuer struct {
	secret []byte
}

// NewIssuer builds an Issuer. An empty secret is a programming error and is
// rejected at construction so it fails at startup rather than per request.
func NewIssuer(secret string) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	return &Issuer{secret: []byte(secret)}, nil
}

// Issue signs a token identifying the given account. Tokens carry no expiry;
// short-lived sessions are out of scope for this service.
func (i *Issuer) Issue(accountID string) (string, error) {
	claims := Claims{User: UserClaim{ID: accountID}}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Parse verifies a token and returns the account id from its claim.
func (i *Issuer) Parse(tokenString string) (string, error) {
	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || claims.User.ID == "" {
		return "", ErrInvalidToken
	}

	return claims.User.ID, nil
}
