package users

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/david-develop/files-manager/internal/service"
	v1 "github.com/david-develop/files-manager/internal/transport/web/v1"
)

type Handler struct {
	Log   *log.Logger
	Users *service.Users
	Auth  *service.Auth
}

type userOut struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Create godoc
// @Summary     Register a new account
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body object true "email, password"
// @Success     200 {object} userOut
// @Failure     400 {object} object
// @Router      /users [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.Log.Printf("register body decode: %v", err)
	}

	u, err := h.Users.Register(r.Context(), body.Email, body.Password)
	if err != nil {
		v1.WriteDomainError(w, err)
		return
	}
	v1.WriteJSON(w, http.StatusOK, userOut{ID: u.ID.String(), Email: u.Email})
}

// Me godoc
// @Summary     Current account
// @Tags        users
// @Produce     json
// @Param       X-Token header string true "session token"
// @Success     200 {object} userOut
// @Failure     401 {object} object
// @Router      /users/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.Auth.Me(r.Context(), v1.TokenFromRequest(r))
	if err != nil {
		v1.WriteDomainError(w, err)
		return
	}
	v1.WriteJSON(w, http.StatusOK, userOut{ID: u.ID.String(), Email: u.Email})
}
