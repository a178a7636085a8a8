package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brsr-backend/internal/documents"
	"brsr-backend/internal/export"
	"brsr-backend/internal/shared/auth"
	"brsr-backend/internal/shared/config"
	"brsr-backend/internal/shared/metrics"
	"brsr-backend/internal/shared/server/middleware"
	"brsr-backend/internal/shared/server/respond"
	"brsr-backend/internal/users"
)

// RouterDeps carries the handlers and shared pieces the router needs.
type RouterDeps struct {
	Config          config.Config
	Signer          *auth.Signer
	UsersHandler    *users.Handler
	DocumentHandler *documents.Handler
	ExportHandler   *export.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	public := r.Group("")
	deps.UsersHandler.RegisterRoutes(public)

	protected := r.Group("")
	protected.Use(middleware.Auth(deps.Signer))
	deps.DocumentHandler.RegisterRoutes(protected)
	deps.ExportHandler.RegisterRoutes(protected)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
