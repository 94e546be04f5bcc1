package domain

import "context"

// Размер страницы листинга. Фиксирован, клиент выбирает только номер страницы.
const PageSize = 20

type UsersRepo interface {
	Close()
	Ping(context.Context) error
	CreateUser(ctx context.Context, email, passHash string) (User, error)
	UserByEmail(ctx context.Context, email string) (User, error)
	UserByID(ctx context.Context, id UserID) (User, error)
	CountUsers(ctx context.Context) (int64, error)
}

type FilesRepo interface {
	CreateFile(ctx context.Context, f File) (File, error)
	FileByID(ctx context.Context, id FileID) (File, error)
	// Точечный поиск в рамках владельца: чужая запись неотличима от отсутствующей.
	OwnedFileByID(ctx context.Context, id FileID, owner UserID) (File, error)
	// Страница записей владельца под parent, в порядке вставки.
	ListFiles(ctx context.Context, owner UserID, parent ParentRef, page int) ([]File, error)
	CountFiles(ctx context.Context) (int64, error)
}
