package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/simqueue/internal/api/handlers"
)

// StatisticsRoutes registers the aggregate endpoints. Any authenticated
// caller may read them.
func StatisticsRoutes(rg *gin.RouterGroup, h *handlers.StatisticsHandler) {
	stats := rg.Group("/statistics")
	{
		stats.GET("/queue-length", h.QueueLength)
		stats.GET("/job-count", h.JobCount)
		stats.GET("/active-users", h.ActiveUsers)
		stats.GET("/project-count", h.ProjectCount)
		stats.GET("/quota-usage", h.QuotaUsage)
	}
}
