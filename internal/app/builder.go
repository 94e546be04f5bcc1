package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/david-develop/files-manager/internal/auth/password"
	"github.com/david-develop/files-manager/internal/auth/session"
	"github.com/david-develop/files-manager/internal/config"
	"github.com/david-develop/files-manager/internal/domain"
	redisx "github.com/david-develop/files-manager/internal/infra/cache/redis"
	"github.com/david-develop/files-manager/internal/infra/database/postgres"
	localstorage "github.com/david-develop/files-manager/internal/infra/storage/local"
	s3storage "github.com/david-develop/files-manager/internal/infra/storage/s3"
	"github.com/david-develop/files-manager/internal/service"
	"github.com/david-develop/files-manager/internal/transport/web"
)

type App struct {
	config *config.Config
	server *web.Server
	log    *log.Logger
	repo   *postgres.PGRepo
	cache  domain.Cache
}

func Build(ctx context.Context) (*App, error) {
	base := log.New(os.Stdout, "[app] ", log.LstdFlags)

	serverLog := log.New(base.Writer(), base.Prefix()+"[server] ", base.Flags())
	pgLog := log.New(base.Writer(), base.Prefix()+"[postgres] ", base.Flags())
	storageLog := log.New(base.Writer(), base.Prefix()+"[storage] ", base.Flags())
	redisLog := log.New(base.Writer(), base.Prefix()+"[redis] ", base.Flags())
	svcLog := log.New(base.Writer(), base.Prefix()+"[service] ", base.Flags())

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed load config: %w", err)
	}
	base.Printf("\n  configuration: %s-------------------", cfg)

	base.Println("init PostgreSQL")
	pgRepo, err := postgres.NewPGRepo(ctx, pgLog, cfg.GetDSN(), cfg.DBScheme)
	if err != nil {
		return nil, fmt.Errorf("failed init postgres: %w", err)
	}
	base.Println("PostgreSQL is initialized")

	base.Println("init blob storage")
	blobs, err := buildStorage(cfg, storageLog)
	if err != nil {
		return nil, fmt.Errorf("failed init storage: %w", err)
	}

	base.Println("init Redis")
	rc := redisx.New(redisx.Config{
		Addr:     cfg.RedisAddr,
		DB:       cfg.RedisDB,
		Password: cfg.RedisPassword,
	}, redisLog)
	if err := rc.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed init redis: %w", err)
	}
	base.Println("Redis is initialized")

	// Auth primitives
	hasher := password.NewDefault()
	sessions := session.NewStore(rc, cfg.SessionTTL)

	// Services
	filesSvc := service.NewFiles(svcLog, pgRepo, pgRepo, blobs, sessions)
	usersSvc := service.NewUsers(svcLog, pgRepo, hasher)
	authSvc := service.NewAuth(svcLog, pgRepo, hasher, sessions)

	base.Println("init Server")
	server := web.New(serverLog, cfg, web.Deps{
		Files:  filesSvc,
		Users:  usersSvc,
		Auth:   authSvc,
		DB:     pgRepo,
		Cache:  rc,
		Counts: pgRepo,
	})
	base.Println("Server is initialized")

	base.Println("build ended")
	return &App{
		config: cfg,
		server: server,
		log:    base,
		repo:   pgRepo,
		cache:  rc,
	}, nil
}

// buildStorage выбирает бэкенд блобов по конфигу: локальный диск или S3.
func buildStorage(cfg *config.Config, logger *log.Logger) (domain.BlobStorage, error) {
	switch cfg.StorageDriver {
	case "s3":
		return s3storage.New(s3storage.Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			UseSSL:    cfg.S3UseSSL,
		}, logger)
	case "local", "":
		return localstorage.New(cfg.FolderPath, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.Println("start application...")
	go a.server.Run()
	<-ctx.Done()
	a.log.Println("stop application...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.server.Close(stopCtx)
	a.repo.Close()
	a.cache.Close()

	return nil
}
