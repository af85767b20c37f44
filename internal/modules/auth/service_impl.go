package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"

	"github.com/georgemunganga/awe-electronics/internal/config"
	"github.com/georgemunganga/awe-electronics/internal/modules/user"
)

type service struct {
	users  user.Repository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	log    *zap.Logger
}

// NewService creates a new auth service.
func NewService(users user.Repository, cfg config.AuthConfig, log *zap.Logger) Service {
	return &service{
		users:  users,
		secret: []byte(cfg.Secret),
		ttl:    cfg.TokenTTL,
		now:    time.Now,
		log:    log,
	}
}

func (s *service) Login(ctx context.Context, username, password string) (Session, error) {
	u, ok := s.users.GetByCredentials(username, password)
	if !ok {
		s.log.Info("login rejected", zap.String("username", username))
		return Session{}, ErrInvalidCredentials
	}

	issued := s.now()
	claims := &Claims{
		UserID: u.ID,
		Role:   u.Role,
		StandardClaims: jwt.StandardClaims{
			Subject:   strconv.Itoa(u.ID),
			IssuedAt:  issued.Unix(),
			ExpiresAt: issued.Add(s.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return Session{}, fmt.Errorf("sign token: %w", err)
	}

	s.log.Info("user logged in", zap.Int("user_id", u.ID), zap.String("role", string(u.Role)))
	return Session{User: u, Token: tokenString}, nil
}

func (s *service) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
