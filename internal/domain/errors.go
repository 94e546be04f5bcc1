package domain

import "errors"

// Бизнес-ошибки (маппятся на HTTP коды и тексты в одном месте транспорта)
var (
	ErrUnauthorized    = errors.New("unauthorized")        // 401
	ErrMissingName     = errors.New("missing name")        // 400
	ErrMissingType     = errors.New("missing type")        // 400
	ErrMissingData     = errors.New("missing data")        // 400
	ErrInvalidData     = errors.New("invalid data")        // 400, битый base64
	ErrParentNotFound  = errors.New("parent not found")    // 400
	ErrParentNotFolder = errors.New("parent not a folder") // 400
	ErrNotFound        = errors.New("not found")           // 404
	ErrMissingEmail    = errors.New("missing email")       // 400
	ErrMissingPassword = errors.New("missing password")    // 400
	ErrAlreadyExists   = errors.New("already exist")       // 400
	ErrStorage         = errors.New("storage failure")     // 500, запись блоба
	ErrPersistence     = errors.New("persistence failure") // 500, репозиторий
)
