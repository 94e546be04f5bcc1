package service

import (
	"context"
	"log"

	"github.com/david-develop/files-manager/internal/domain"
)

// Users — регистрация аккаунтов.
type Users struct {
	log    *log.Logger
	users  domain.UsersRepo
	hasher domain.PasswordHasher
}

func NewUsers(logger *log.Logger, users domain.UsersRepo, hasher domain.PasswordHasher) *Users {
	return &Users{log: logger, users: users, hasher: hasher}
}

func (s *Users) Register(ctx context.Context, email, plainPassword string) (domain.User, error) {
	if email == "" {
		return domain.User{}, domain.ErrMissingEmail
	}
	if plainPassword == "" {
		return domain.User{}, domain.ErrMissingPassword
	}

	hash, err := s.hasher.Hash(plainPassword)
	if err != nil {
		s.log.Printf("register hash: %v", err)
		return domain.User{}, err
	}

	// уникальность email обеспечивает БД; дубликат придёт как ErrAlreadyExists
	u, err := s.users.CreateUser(ctx, email, hash)
	if err != nil {
		return domain.User{}, err
	}
	s.log.Printf("user registered id=%s", u.ID)
	return u, nil
}
