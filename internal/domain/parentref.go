package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ParentRef — ссылка на родительскую папку.
// Вместо жонглирования 0 / "0" / id в одном поле — явная сумма:
// корень, папка с id, либо нераспознанное значение из запроса.
type ParentRef struct {
	id      FileID
	invalid bool
}

// RootParent — канонический "нет родителя".
func RootParent() ParentRef { return ParentRef{} }

// FolderParent — ссылка на конкретную папку.
func FolderParent(id FileID) ParentRef { return ParentRef{id: id} }

func (p ParentRef) IsRoot() bool { return !p.invalid && p.id == uuid.Nil }

// FolderID возвращает id папки; ok=false для корня и для мусора из запроса.
func (p ParentRef) FolderID() (FileID, bool) {
	if p.invalid || p.id == uuid.Nil {
		return uuid.Nil, false
	}
	return p.id, true
}

func (p ParentRef) String() string {
	if p.invalid {
		return "<invalid>"
	}
	if p.IsRoot() {
		return "0"
	}
	return p.id.String()
}

// MarshalJSON: корень наружу уходит числом 0, иначе — id папки.
func (p ParentRef) MarshalJSON() ([]byte, error) {
	if id, ok := p.FolderID(); ok {
		return json.Marshal(id)
	}
	return []byte("0"), nil
}

// UnmarshalJSON принимает отсутствие/null/0/"0"/"" как корень и uuid как папку.
// Нераспознанное значение не валит весь запрос: помечаем ссылку невалидной,
// дальше валидация иерархии отработает как "родитель не найден".
func (p *ParentRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte("0")) {
		*p = RootParent()
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// не строка и не 0/null — например, объект или другое число
		*p = ParentRef{invalid: true}
		return nil
	}
	*p = ParentRefFromString(s)
	return nil
}

// ParentRefFromString разбирает значение из query/body.
func ParentRefFromString(s string) ParentRef {
	if s == "" || s == "0" {
		return RootParent()
	}
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return ParentRef{invalid: true}
	}
	return FolderParent(id)
}

var _ fmt.Stringer = ParentRef{}
