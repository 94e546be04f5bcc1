package files

import (
	"net/http"
	"strconv"

	"github.com/david-develop/files-manager/internal/domain"
	v1 "github.com/david-develop/files-manager/internal/transport/web/v1"
)

// GetIndex godoc
// @Summary     List file records under a parent
// @Tags        files
// @Produce     json
// @Param       X-Token header string true "session token"
// @Param       parentId query string false "parent folder id, 0 for root"
// @Param       page query int false "zero-based page, 20 per page"
// @Success     200 {array} domain.FileView
// @Failure     401 {object} object
// @Router      /files [get]
func (h *Handler) GetIndex(w http.ResponseWriter, r *http.Request) {
	parent := domain.ParentRefFromString(r.URL.Query().Get("parentId"))

	// нечисловой или отрицательный page прижимаем к нулю
	page := 0
	if s := r.URL.Query().Get("page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			page = n
		}
	}

	views, err := h.Files.List(r.Context(), v1.TokenFromRequest(r), parent, page)
	if err != nil {
		v1.WriteDomainError(w, err)
		return
	}
	v1.WriteJSON(w, http.StatusOK, views)
}
