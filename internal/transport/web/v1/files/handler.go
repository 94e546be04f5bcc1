package files

import (
	"log"

	"github.com/david-develop/files-manager/internal/service"
)

type Handler struct {
	Log   *log.Logger
	Files *service.Files
}
