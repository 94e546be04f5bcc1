package web

import (
	"log"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/david-develop/files-manager/internal/docs"
	"github.com/david-develop/files-manager/internal/transport/web/mw"
	appv1 "github.com/david-develop/files-manager/internal/transport/web/v1/app"
	authv1 "github.com/david-develop/files-manager/internal/transport/web/v1/auth"
	filesv1 "github.com/david-develop/files-manager/internal/transport/web/v1/files"
	usersv1 "github.com/david-develop/files-manager/internal/transport/web/v1/users"
)

func newRouter(ah *appv1.Handler, uh *usersv1.Handler, sh *authv1.Handler, fh *filesv1.Handler, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	// app
	mux.HandleFunc("GET /status", ah.Status)
	mux.HandleFunc("GET /stats", ah.Stats)

	// users
	mux.HandleFunc("POST /users", uh.Create)
	mux.HandleFunc("GET /users/me", uh.Me)

	// sessions
	mux.HandleFunc("GET /connect", sh.Connect)
	mux.HandleFunc("GET /disconnect", sh.Disconnect)

	// files
	mux.HandleFunc("POST /files", limitBody(16<<20, fh.Upload)) // 16MB лимит
	mux.HandleFunc("GET /files", fh.GetIndex)
	mux.HandleFunc("GET /files/{id}", fh.GetShow)

	// swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// 🔗 middleware
	return mw.WithRequestID(mw.Logging(logger)(mux))
}

func limitBody(n int64, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		h(w, r)
	}
}
