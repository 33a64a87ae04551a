package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/generation"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/ui"
)

// RouterDeps lists the handlers mounted on the router.
type RouterDeps struct {
	Config            config.Config
	Health            *health.Service
	GenerationHandler *generation.Handler
	UIHandler         *ui.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)
	r.NoMethod(generation.MethodNotAllowed)
	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "Not found")
	})

	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, deps.Health.Status())
	})
	r.GET("/metrics", metrics.Handler())

	// /api/generate keeps the path browser clients already post to.
	for _, prefix := range []string{"/api", "/api/v1"} {
		deps.GenerationHandler.RegisterRoutes(r.Group(prefix))
	}
	if deps.UIHandler != nil {
		deps.UIHandler.RegisterRoutes(r)
	}

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
