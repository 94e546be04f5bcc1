package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/david-develop/files-manager/internal/domain"
)

// Формат ошибки на проводе: {"error": "<message>"}.
type errorBody struct {
	Error string `json:"error"`
}

// MapDomainError решает HTTP-статус и текст.
// Тексты фиксированы контрактом, менять нельзя.
func MapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, domain.ErrMissingName):
		return http.StatusBadRequest, "Missing name"
	case errors.Is(err, domain.ErrMissingType):
		return http.StatusBadRequest, "Missing type"
	case errors.Is(err, domain.ErrMissingData):
		return http.StatusBadRequest, "Missing data"
	case errors.Is(err, domain.ErrInvalidData):
		return http.StatusBadRequest, "Invalid data"
	case errors.Is(err, domain.ErrParentNotFound):
		return http.StatusBadRequest, "Parent not found"
	case errors.Is(err, domain.ErrParentNotFolder):
		return http.StatusBadRequest, "Parent is not a folder"
	case errors.Is(err, domain.ErrMissingEmail):
		return http.StatusBadRequest, "Missing email"
	case errors.Is(err, domain.ErrMissingPassword):
		return http.StatusBadRequest, "Missing password"
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusBadRequest, "Already exist"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Not found"
	default:
		// ErrStorage, ErrPersistence, таймауты, отмены
		return http.StatusInternalServerError, "Internal error"
	}
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteDomainError(w http.ResponseWriter, err error) {
	status, msg := MapDomainError(err)
	WriteJSON(w, status, errorBody{Error: msg})
}
