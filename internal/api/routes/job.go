package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/simqueue/internal/api/handlers"
	"github.com/linskybing/simqueue/internal/api/middleware"
)

// JobRoutes registers job endpoints
func JobRoutes(rg *gin.RouterGroup, h *handlers.JobHandler, a *middleware.Auth) {
	viewer := a.CollabViewer(middleware.FromJobParam())

	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.ListJobs)
		jobs.POST("", a.CollabEditor(middleware.FromPayload("collab_id")), h.SubmitJob)
		jobs.GET("/:id", viewer, h.GetJob)
		jobs.PUT("/:id/status", a.Admin(), h.UpdateStatus)
		jobs.GET("/:id/comments", viewer, h.GetComments)
		jobs.POST("/:id/comments", viewer, h.AddComment)
		jobs.GET("/:id/log", viewer, h.GetLog)
		jobs.PUT("/:id/log", a.Admin(), h.SaveLog)
	}
}
