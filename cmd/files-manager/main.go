package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/david-develop/files-manager/internal/app"
)

// @title       files-manager API
// @version     1.0
// @description Authenticated file storage: folders, files and images with session tokens.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx)
	if err != nil {
		log.Fatalf("build: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
