package app

import (
	"context"
	"log"
	"net/http"

	v1 "github.com/david-develop/files-manager/internal/transport/web/v1"
)

type Pinger interface {
	Ping(context.Context) error
}

type Counters interface {
	CountUsers(ctx context.Context) (int64, error)
	CountFiles(ctx context.Context) (int64, error)
}

type Handler struct {
	Log    *log.Logger
	DB     Pinger
	Cache  Pinger
	Counts Counters
}

// Status godoc
// @Summary     Connectivity of redis and the database
// @Tags        app
// @Produce     json
// @Success     200 {object} object
// @Router      /status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	out := map[string]bool{
		"redis": h.Cache.Ping(r.Context()) == nil,
		"db":    h.DB.Ping(r.Context()) == nil,
	}
	v1.WriteJSON(w, http.StatusOK, out)
}

// Stats godoc
// @Summary     Stored users and files counters
// @Tags        app
// @Produce     json
// @Success     200 {object} object
// @Router      /stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	users, err := h.Counts.CountUsers(r.Context())
	if err != nil {
		v1.WriteDomainError(w, err)
		return
	}
	files, err := h.Counts.CountFiles(r.Context())
	if err != nil {
		v1.WriteDomainError(w, err)
		return
	}
	v1.WriteJSON(w, http.StatusOK, map[string]int64{"users": users, "files": files})
}
