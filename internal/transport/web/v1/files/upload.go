package files

import (
	"encoding/json"
	"net/http"

	"github.com/david-develop/files-manager/internal/domain"
	"github.com/david-develop/files-manager/internal/service"
	v1 "github.com/david-develop/files-manager/internal/transport/web/v1"
)

// Upload godoc
// @Summary     Create folder, file or image
// @Tags        files
// @Accept      json
// @Produce     json
// @Param       X-Token header string true "session token"
// @Param       body body object true "name, type, parentId, isPublic, data(base64)"
// @Success     201 {object} domain.FileView
// @Failure     400 {object} object
// @Failure     401 {object} object
// @Router      /files [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string           `json:"name"`
		Type     string           `json:"type"`
		ParentID domain.ParentRef `json:"parentId"`
		IsPublic bool             `json:"isPublic"`
		Data     string           `json:"data"`
	}
	// битое тело не валим отдельно: пустой input упадёт на первой проверке
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.Log.Printf("upload body decode: %v", err)
	}

	view, err := h.Files.Create(r.Context(), v1.TokenFromRequest(r), service.CreateFileInput{
		Name:     body.Name,
		Type:     body.Type,
		Parent:   body.ParentID,
		IsPublic: body.IsPublic,
		Data:     body.Data,
	})
	if err != nil {
		v1.WriteDomainError(w, err)
		return
	}
	v1.WriteJSON(w, http.StatusCreated, view)
}
