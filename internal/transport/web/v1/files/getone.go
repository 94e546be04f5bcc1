package files

import (
	"net/http"

	v1 "github.com/david-develop/files-manager/internal/transport/web/v1"
)

// GetShow godoc
// @Summary     Get single file record
// @Tags        files
// @Produce     json
// @Param       X-Token header string true "session token"
// @Param       id path string true "file id"
// @Success     200 {object} domain.FileView
// @Failure     401 {object} object
// @Failure     404 {object} object
// @Router      /files/{id} [get]
func (h *Handler) GetShow(w http.ResponseWriter, r *http.Request) {
	view, err := h.Files.Get(r.Context(), v1.TokenFromRequest(r), r.PathValue("id"))
	if err != nil {
		v1.WriteDomainError(w, err)
		return
	}
	v1.WriteJSON(w, http.StatusOK, view)
}
