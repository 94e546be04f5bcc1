package auth

import (
	"log"
	"net/http"

	"github.com/david-develop/files-manager/internal/domain"
	"github.com/david-develop/files-manager/internal/service"
	v1 "github.com/david-develop/files-manager/internal/transport/web/v1"
)

type Handler struct {
	Log  *log.Logger
	Auth *service.Auth
}

// Connect godoc
// @Summary     Open a session
// @Description HTTP Basic (email:password) -> session token
// @Tags        auth
// @Produce     json
// @Success     200 {object} object "token"
// @Failure     401 {object} object
// @Router      /connect [get]
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	email, pass, ok := r.BasicAuth()
	if !ok {
		v1.WriteDomainError(w, domain.ErrUnauthorized)
		return
	}

	token, err := h.Auth.Connect(r.Context(), email, pass)
	if err != nil {
		v1.WriteDomainError(w, err)
		return
	}
	v1.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Disconnect godoc
// @Summary     Close the current session
// @Tags        auth
// @Param       X-Token header string true "session token"
// @Success     204
// @Failure     401 {object} object
// @Router      /disconnect [get]
func (h *Handler) Disconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Disconnect(r.Context(), v1.TokenFromRequest(r)); err != nil {
		v1.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
