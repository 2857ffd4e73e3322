package service

import (
	"fmt"
	"time"

	"multisig-vault/internal/core/domain"
	"multisig-vault/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
)

// JWTTokenService implements ports.TokenService using HS256 JWT. The token
// only carries an owner identity the hosting environment already
// authenticated; it is transport plumbing, not the quorum rule.
type JWTTokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
}

// NewJWTTokenService creates a new JWT token service.
func NewJWTTokenService(secret string, expiry time.Duration, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
	}
}

// Generate creates a signed JWT carrying the given owner identity.
func (s *JWTTokenService) Generate(identity domain.Owner) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := jwt.MapClaims{
		"sub": string(identity),
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
		"iss": s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Validate parses a JWT and returns the owner identity it carries.
func (s *JWTTokenService) Validate(tokenString string) (domain.Owner, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", apperror.ErrInvalidToken()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", apperror.ErrInvalidToken()
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return "", apperror.ErrInvalidToken()
	}

	identity := domain.Owner(sub)
	if !identity.Valid() {
		return "", apperror.ErrInvalidToken()
	}
	return identity, nil
}
