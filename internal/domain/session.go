package domain

import "context"

// Сессии: непрозрачный токен -> id пользователя, TTL живёт в сторе.
// Отсутствие ключа (включая истёкший TTL) == неаутентифицирован.
type SessionStore interface {
	Issue(ctx context.Context, userID UserID) (string, error)
	Resolve(ctx context.Context, token string) (UserID, error)
	Revoke(ctx context.Context, token string) error
}

// Хеширование паролей
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, encodedHash string) (bool, error)
}
