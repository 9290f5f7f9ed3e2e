package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// JWTService mints and verifies HS256-signed bearer tokens. The signing
// secret is shared, process-wide configuration; tokens carry the standard
// sub/iat/exp claims and nothing else.
type JWTService struct {
	secret        []byte
	tokenDuration time.Duration
}

func NewJWTService(secret []byte, tokenDuration time.Duration) *JWTService {
	return &JWTService{
		secret:        secret,
		tokenDuration: tokenDuration,
	}
}

// CreateToken generates a signed token asserting the given subject,
// expiring tokenDuration after issuance.
func (s *JWTService) CreateToken(subject string) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
	})

	return token.SignedString(s.secret)
}

// VerifyToken validates signature and expiration and returns the subject.
// A token signed with a different secret is indistinguishable from a
// malformed one; both fail with ErrInvalidToken. There is no revocation:
// a token stays valid for its whole window regardless of account state.
func (s *JWTService) VerifyToken(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
