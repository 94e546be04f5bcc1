package domain

import "context"

// Хранилище бинарного контента (локальный диск или S3/MinIO).
// Ключ генерируется хранилищем, от имени файла не зависит.
type BlobStorage interface {
	// Запись целиком, одним вызовом. Возвращает непрозрачный ключ.
	Put(ctx context.Context, data []byte) (string, error)
	// Чтение целиком по ключу.
	Get(ctx context.Context, storageKey string) ([]byte, error)
}
