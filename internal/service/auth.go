package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/david-develop/files-manager/internal/domain"
)

// Auth — выдача и завершение сессий, текущий пользователь.
type Auth struct {
	log      *log.Logger
	users    domain.UsersRepo
	hasher   domain.PasswordHasher
	sessions domain.SessionStore
}

func NewAuth(logger *log.Logger, users domain.UsersRepo, hasher domain.PasswordHasher,
	sessions domain.SessionStore) *Auth {
	return &Auth{log: logger, users: users, hasher: hasher, sessions: sessions}
}

// Connect проверяет email/пароль и выдаёт свежий токен.
// Любое несовпадение — одинаковый ErrUnauthorized, без деталей.
func (s *Auth) Connect(ctx context.Context, email, plainPassword string) (string, error) {
	if email == "" || plainPassword == "" {
		return "", domain.ErrUnauthorized
	}
	u, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUnauthorized
		}
		s.log.Printf("connect lookup: %v", err)
		return "", err
	}
	ok, err := s.hasher.Verify(plainPassword, u.PassHash)
	if err != nil {
		s.log.Printf("connect verify: %v", err)
		return "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return "", domain.ErrUnauthorized
	}

	token, err := s.sessions.Issue(ctx, u.ID)
	if err != nil {
		s.log.Printf("connect issue: %v", err)
		return "", err
	}
	s.log.Printf("session issued for %s", u.ID)
	return token, nil
}

// Disconnect гасит сессию. Неизвестный токен — ErrUnauthorized.
func (s *Auth) Disconnect(ctx context.Context, token string) error {
	if _, err := s.sessions.Resolve(ctx, token); err != nil {
		return err
	}
	if err := s.sessions.Revoke(ctx, token); err != nil {
		s.log.Printf("disconnect revoke: %v", err)
		return err
	}
	return nil
}

// Me возвращает пользователя текущей сессии.
func (s *Auth) Me(ctx context.Context, token string) (domain.User, error) {
	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return domain.User{}, err
	}
	u, err := s.users.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.ErrUnauthorized
		}
		return domain.User{}, err
	}
	return u, nil
}
