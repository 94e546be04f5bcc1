package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/david-develop/files-manager/internal/config"
	"github.com/david-develop/files-manager/internal/service"
	appv1 "github.com/david-develop/files-manager/internal/transport/web/v1/app"
	authv1 "github.com/david-develop/files-manager/internal/transport/web/v1/auth"
	filesv1 "github.com/david-develop/files-manager/internal/transport/web/v1/files"
	usersv1 "github.com/david-develop/files-manager/internal/transport/web/v1/users"
)

type Server struct {
	log    *log.Logger
	server *http.Server
	cfg    *config.Config
}

// Deps — явно собранные коллабораторы, без глобальных синглтонов.
type Deps struct {
	Files *service.Files
	Users *service.Users
	Auth  *service.Auth

	DB     appv1.Pinger
	Cache  appv1.Pinger
	Counts appv1.Counters
}

func New(logger *log.Logger, cfg *config.Config, deps Deps) *Server {
	appLog := log.New(logger.Writer(), logger.Prefix()+"[app] ", logger.Flags())
	usersLog := log.New(logger.Writer(), logger.Prefix()+"[users] ", logger.Flags())
	authLog := log.New(logger.Writer(), logger.Prefix()+"[auth] ", logger.Flags())
	filesLog := log.New(logger.Writer(), logger.Prefix()+"[files] ", logger.Flags())

	appHandler := &appv1.Handler{Log: appLog, DB: deps.DB, Cache: deps.Cache, Counts: deps.Counts}
	usersHandler := &usersv1.Handler{Log: usersLog, Users: deps.Users, Auth: deps.Auth}
	authHandler := &authv1.Handler{Log: authLog, Auth: deps.Auth}
	filesHandler := &filesv1.Handler{Log: filesLog, Files: deps.Files}

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           newRouter(appHandler, usersHandler, authHandler, filesHandler, logger),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{server: srv, cfg: cfg, log: logger}
}

func (ws *Server) Run() {
	ws.log.Printf("started on %s", ws.server.Addr)
	if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		ws.log.Fatalf("error: %v", err)
	}
}

func (ws *Server) Close(ctx context.Context) {
	if err := ws.server.Shutdown(ctx); err != nil {
		ws.log.Printf("forced to shutdown: %v", err)
	}
	ws.log.Println("exited gracefully")
}
