package auth

import (
	"context"
	"errors"

	"github.com/dgrijalva/jwt-go"

	"github.com/georgemunganga/awe-electronics/internal/modules/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Claims is the payload of a session token.
type Claims struct {
	UserID int       `json:"uid"`
	Role   user.Role `json:"role"`
	jwt.StandardClaims
}

// Session is returned on successful login.
type Session struct {
	User  user.User `json:"user"`
	Token string    `json:"token"`
}

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, username, password string) (Session, error)
	ParseToken(token string) (*Claims, error)
}
