package password

import (
	"github.com/alexedwards/argon2id"

	"github.com/david-develop/files-manager/internal/domain"
)

// Hasher — argon2id поверх справочника пользователей: хэш в закодированном
// виде ($argon2id$v=19$m=...) уезжает в колонку pass_hash как есть.
type Hasher struct {
	params *argon2id.Params
}

// NewDefault — параметры библиотеки по умолчанию; регистрация и /connect
// редкие операции, профилировать стоимость хэша тут не из чего.
func NewDefault() *Hasher { return &Hasher{params: argon2id.DefaultParams} }

// New принимает свои параметры; nil откатывается к дефолтным.
func New(p *argon2id.Params) *Hasher {
	if p == nil {
		p = argon2id.DefaultParams
	}
	return &Hasher{params: p}
}

var _ domain.PasswordHasher = (*Hasher)(nil)

func (h *Hasher) Hash(plain string) (string, error) {
	return argon2id.CreateHash(plain, h.params)
}

// Verify: соль и параметры берутся из самой закодированной строки.
func (h *Hasher) Verify(plain, encodedHash string) (bool, error) {
	return argon2id.ComparePasswordAndHash(plain, encodedHash)
}
