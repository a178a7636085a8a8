// Package bootstrap wires configuration into a runnable application:
// database or in-memory repositories, the object store, the extraction
// client, token signing and the HTTP router.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"brsr-backend/internal/documents"
	"brsr-backend/internal/export"
	"brsr-backend/internal/extract"
	"brsr-backend/internal/extract/gemini"
	"brsr-backend/internal/extract/localtext"
	"brsr-backend/internal/shared/auth"
	"brsr-backend/internal/shared/config"
	"brsr-backend/internal/shared/server"
	"brsr-backend/internal/shared/storage/db"
	"brsr-backend/internal/shared/storage/object"
	localstore "brsr-backend/internal/shared/storage/object/local"
	s3store "brsr-backend/internal/shared/storage/object/s3"
	"brsr-backend/internal/users"
)

// devJWTSecret keeps local runs and tests working without configuration.
// Production refuses to start on a missing or short secret.
const devJWTSecret = "dev-only-signing-secret-0123456789abcdef"

// App holds the application's shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.Store
	Signer *auth.Signer

	UsersRepo    users.Repo
	DocumentRepo documents.Repo

	UsersService    *users.Service
	DocumentService *documents.Service
	ExportService   *export.Service

	UsersHandler    *users.Handler
	DocumentHandler *documents.Handler
	ExportHandler   *export.Handler
}

// Build prepares the application from configuration.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	if cfg.StorageTimeout <= 0 {
		cfg.StorageTimeout = 30 * time.Second
	}
	if cfg.ExtractTimeout <= 0 {
		cfg.ExtractTimeout = 120 * time.Second
	}
	if cfg.JWTExpiry <= 0 {
		cfg.JWTExpiry = 24 * time.Hour
	}
	ctx := context.Background()

	signer, err := buildSigner(cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	extractor, err := buildExtractor(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Signer: signer,
	}

	if sqlDB != nil {
		app.UsersRepo = &users.PGRepo{DB: sqlDB}
		app.DocumentRepo = &documents.PGRepo{DB: sqlDB}
	} else {
		app.UsersRepo = users.NewMemoryRepo()
		app.DocumentRepo = documents.NewMemoryRepo()
	}

	app.UsersService = users.NewService(app.UsersRepo, signer)
	app.DocumentService = documents.NewService(store, extractor, app.DocumentRepo, cfg.StorageTimeout, cfg.ExtractTimeout)
	app.ExportService = export.NewService(app.DocumentRepo)

	app.UsersHandler = users.NewHandler(app.UsersService)
	app.DocumentHandler = documents.NewHandler(app.DocumentService)
	app.ExportHandler = export.NewHandler(app.ExportService)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		Signer:          signer,
		UsersHandler:    app.UsersHandler,
		DocumentHandler: app.DocumentHandler,
		ExportHandler:   app.ExportHandler,
	})

	return app, nil
}

func buildSigner(cfg config.Config) (*auth.Signer, error) {
	secret := strings.TrimSpace(cfg.JWTSecret)
	if len(secret) < config.MinJWTSecretLen {
		if !isDevLike(cfg.Env) {
			return nil, fmt.Errorf("JWT_SECRET must be at least %d bytes", config.MinJWTSecretLen)
		}
		if secret != "" {
			log.Printf("bootstrap: JWT_SECRET shorter than %d bytes; using the dev secret", config.MinJWTSecretLen)
		}
		secret = devJWTSecret
	}
	return auth.NewSigner(secret, cfg.JWTExpiry)
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.Store, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildExtractor(cfg config.Config) (extract.Client, error) {
	switch cfg.ExtractProvider {
	case "gemini":
		return gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		return localtext.NewClient(), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "test":
		return true
	default:
		return false
	}
}
