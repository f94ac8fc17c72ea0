package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/simqueue/internal/api/handlers"
	"github.com/linskybing/simqueue/internal/api/middleware"
	"github.com/linskybing/simqueue/internal/application"
	"github.com/linskybing/simqueue/internal/repository"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(r *gin.Engine, repos *repository.Repos, svc *application.Services) {
	h := handlers.New(svc, repos)
	authMiddleware := middleware.NewAuth(repos)

	r.GET("/healthz", h.Health.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		JobRoutes(auth, h.Job, authMiddleware)
		ProjectRoutes(auth, h.Project, h.Quota, authMiddleware)
		StatisticsRoutes(auth, h.Statistics)
	}
}
