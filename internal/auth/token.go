package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jotter/m/domain"
)

// Claims is the JWT payload: the holder's identity plus iat/exp. ID shadows
// the registered jti field, which is not used.
type Claims struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Name     *string `json:"name"`
	UserType *string `json:"user_type"`
	jwt.RegisteredClaims
}

func newClaims(id domain.Identity) Claims {
	return Claims{ID: id.ID, Username: id.Username, Name: id.Name, UserType: id.UserType}
}

func (c *Claims) Identity() domain.Identity {
	return domain.Identity{ID: c.ID, Username: c.Username, Name: c.Name, UserType: c.UserType}
}

// Tokens issues and verifies HS256 session tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret []byte, ttl time.Duration) *Tokens {
	return &Tokens{secret: secret, ttl: ttl, now: time.Now}
}

// WithClock returns a copy of t reading time from now.
func (t *Tokens) WithClock(now func() time.Time) *Tokens {
	c := *t
	c.now = now
	return &c
}

func (t *Tokens) Issue(id domain.Identity) (string, error) {
	now := t.now()
	claims := newClaims(id)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks signature, algorithm and expiry. Any failure yields
// domain.ErrInvalidToken.
func (t *Tokens) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// ParseUnverified decodes the payload without checking the signature. The
// result is for display only and must never gate access.
func ParseUnverified(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
