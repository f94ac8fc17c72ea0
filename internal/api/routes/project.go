package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/simqueue/internal/api/handlers"
	"github.com/linskybing/simqueue/internal/api/middleware"
)

// ProjectRoutes registers project and nested quota endpoints
func ProjectRoutes(rg *gin.RouterGroup, h *handlers.ProjectHandler, q *handlers.QuotaHandler, a *middleware.Auth) {
	viewer := a.CollabViewer(middleware.FromProjectParam())
	editor := a.CollabEditor(middleware.FromProjectParam())

	projects := rg.Group("/projects")
	{
		projects.GET("", h.ListProjects)
		projects.POST("", a.CollabEditor(middleware.FromPayload("collab")), h.CreateProject)
		projects.GET("/:id", viewer, h.GetProject)
		projects.PUT("/:id", editor, h.UpdateProject)
		projects.DELETE("/:id", editor, h.DeleteProject)
		projects.POST("/:id/submit", editor, h.SubmitProject)
		projects.POST("/:id/accept", a.Admin(), h.AcceptProject)
		projects.POST("/:id/reject", a.Admin(), h.RejectProject)

		quotas := projects.Group("/:id/quotas")
		{
			quotas.GET("", viewer, q.ListQuotas)
			quotas.GET("/:quota_id", viewer, q.GetQuota)
			quotas.POST("", a.Admin(), q.CreateQuota)
			quotas.PUT("/:quota_id", a.Admin(), q.UpdateQuota)
			quotas.DELETE("/:quota_id", a.Admin(), q.DeleteQuota)
			quotas.DELETE("", a.Admin(), q.DeleteAllQuotas)
		}
	}
}
