package auth

import (
	"context"

	"todo-backend/internal/user"
)

// TokenService defines the interface for token creation and validation.
// JWTService (HS256 with a shared secret) is the production implementation.
type TokenService interface {
	CreateToken(subject string) (string, error)
	VerifyToken(tokenStr string) (string, error)
}

// UserStore defines the user persistence operations the auth service needs.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash string) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
