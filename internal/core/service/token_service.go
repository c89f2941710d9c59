package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/app2/products-catalog/internal/core/domain"
	"github.com/app2/products-catalog/internal/core/ports"
)

const defaultTokenTTL = 2 * time.Hour

// sessionClaims is the full claim set embedded in a session token.
type sessionClaims struct {
	Login string `json:"login"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256-signed session tokens. It holds
// no state beyond the immutable signing secret and TTL.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(id, login, role string) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.ttl)

	claims := sessionClaims{
		Login: login,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

func (s *TokenService) Validate(token string) (domain.Identity, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return domain.Identity{}, mapTokenError(err)
	}
	if !parsed.Valid {
		return domain.Identity{}, domain.ErrTokenMalformed
	}

	return domain.Identity{
		ID:    claims.Subject,
		Login: claims.Login,
		Role:  claims.Role,
	}, nil
}

// mapTokenError collapses jwt parse failures into the three terminal
// token errors. Signature failures win over expiry: claims of an
// unsigned token are never trusted.
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	default:
		return domain.ErrTokenMalformed
	}
}

var _ ports.TokenService = (*TokenService)(nil)
