package domain

import (
	"time"

	"github.com/google/uuid"
)

// Базовые идентификаторы
type UserID = uuid.UUID
type FileID = uuid.UUID

// Пользователь (справочник аккаунтов)
type User struct {
	ID        UserID    `json:"id"`
	Email     string    `json:"email"`
	PassHash  string    `json:"-"` // никогда не отдаём наружу
	CreatedAt time.Time `json:"-"`
}

// Тип записи файлового дерева
type FileType string

const (
	TypeFolder FileType = "folder"
	TypeFile   FileType = "file"
	TypeImage  FileType = "image"
)

// ParseFileType распознаёт один из трёх допустимых типов.
func ParseFileType(s string) (FileType, bool) {
	switch FileType(s) {
	case TypeFolder, TypeFile, TypeImage:
		return FileType(s), true
	}
	return "", false
}

// Метаданные файла/папки.
// StorageKey заполнен только для file/image и наружу не сериализуется.
type File struct {
	ID         FileID
	OwnerID    UserID
	Name       string
	Type       FileType
	IsPublic   bool
	Parent     ParentRef
	StorageKey string

	// Технические поля: порядок вставки (стабильная пагинация) и время создания
	Seq       int64
	CreatedAt time.Time
}

// Внешнее представление записи: то, что уходит клиенту.
// parentId нормализован (0 для корня), storage key отрезан.
type FileView struct {
	ID       FileID    `json:"id"`
	UserID   UserID    `json:"userId"`
	Name     string    `json:"name"`
	Type     FileType  `json:"type"`
	IsPublic bool      `json:"isPublic"`
	ParentID ParentRef `json:"parentId"`
}

func (f File) View() FileView {
	return FileView{
		ID:       f.ID,
		UserID:   f.OwnerID,
		Name:     f.Name,
		Type:     f.Type,
		IsPublic: f.IsPublic,
		ParentID: f.Parent,
	}
}
