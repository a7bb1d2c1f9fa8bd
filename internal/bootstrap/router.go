package bootstrap

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	httpapi "github.com/ghanabuild/estimator-backend/internal/api/http"
	"github.com/ghanabuild/estimator-backend/internal/api/http/middleware"
	esthttp "github.com/ghanabuild/estimator-backend/internal/estimation/http"
	projhttp "github.com/ghanabuild/estimator-backend/internal/projects/http"
	"github.com/ghanabuild/estimator-backend/internal/projects/repository"
	"github.com/ghanabuild/estimator-backend/internal/telemetry"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	Environment    string
	FrontendOrigin string
	RatePerMinute  int
	DB             *pgxpool.Pool
	Store          repository.Store
	Sink           telemetry.Sink
	Logger         *zap.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware(dep.Logger))
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
	}))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{dep.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Request-Id"},
		AllowCredentials: true,
	}))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Environment, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	estGroup := api.Group("")
	if dep.RatePerMinute > 0 {
		estGroup.Use(middleware.RateLimitMiddleware(dep.RatePerMinute))
	}
	estHandler := esthttp.New(dep.Sink, dep.Logger)
	estHandler.Register(estGroup)

	projHandler := projhttp.New(dep.Store, dep.Sink, dep.Logger)
	projHandler.Register(api.Group("/projects"))

	return r
}
