package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/david-develop/files-manager/internal/domain"
)

// KV — минимальный интерфейс, который нам нужен от кеша.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttlSeconds int) error
	Del(ctx context.Context, keys ...string) error
}

// Store хранит сессии как auth_<token> -> userID с TTL на стороне стора.
// Токен непрозрачный (uuid), никакой подписи: ревокация — удаление ключа.
type Store struct {
	kv     KV
	prefix string
	ttl    time.Duration
}

func NewStore(kv KV, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{kv: kv, prefix: "auth_", ttl: ttl}
}

var _ domain.SessionStore = (*Store)(nil)

func (s *Store) key(token string) string { return s.prefix + token }

func (s *Store) Issue(ctx context.Context, userID domain.UserID) (string, error) {
	token := uuid.NewString()
	if err := s.kv.Set(ctx, s.key(token), []byte(userID.String()), int(s.ttl.Seconds())); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Resolve: пустой токен и отсутствующий ключ неразличимы — оба ErrUnauthorized.
func (s *Store) Resolve(ctx context.Context, token string) (domain.UserID, error) {
	if token == "" {
		return uuid.Nil, domain.ErrUnauthorized
	}
	val, err := s.kv.Get(ctx, s.key(token))
	if err != nil {
		return uuid.Nil, fmt.Errorf("session lookup: %w", err)
	}
	if len(val) == 0 {
		return uuid.Nil, domain.ErrUnauthorized
	}
	id, err := uuid.Parse(string(val))
	if err != nil {
		// мусор в сторе приравниваем к отсутствию сессии
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

func (s *Store) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrUnauthorized
	}
	return s.kv.Del(ctx, s.key(token))
}
