package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/simqueue/internal/api/middleware"
	"github.com/linskybing/simqueue/internal/application"
	"github.com/linskybing/simqueue/internal/domain/project"
	"github.com/linskybing/simqueue/internal/transform"
	"github.com/linskybing/simqueue/pkg/utils"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// ListProjects godoc
// @Summary Query projects
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param status query []string false "Derived status" collectionFormat(multi)
// @Param collab query []string false "Collab" collectionFormat(multi)
// @Param owner query []string false "Owner" collectionFormat(multi)
// @Success 200 {array} transform.ProjectView
// @Failure 400 {object} response.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	claims := claimsOf(c)
	filter := project.Filter{
		Collab: utils.QueryList(c, "collab"),
		Owner:  utils.QueryList(c, "owner"),
	}
	for _, s := range utils.QueryList(c, "status") {
		filter.Status = append(filter.Status, project.Status(s))
	}
	page, err := utils.BindPagination(c)
	if err != nil {
		fail(c, err)
		return
	}

	if !middleware.IsAdmin(claims) {
		if len(filter.Collab) == 0 {
			filter.Owner = []string{claims.UserID()}
		} else if !viewableCollabs(claims, filter.Collab) {
			forbid(c)
			return
		}
	}

	views, err := h.svc.QueryProjects(c.Request.Context(), filter, page)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetProject godoc
// @Summary Get project by ID
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} transform.ProjectView
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	v, err := h.svc.GetProject(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// CreateProject godoc
// @Summary Create a project
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param project body project.CreateProjectDTO true "Project"
// @Success 201 {object} transform.ProjectView
// @Failure 400 {object} response.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input project.CreateProjectDTO
	if !bind(c, &input) {
		return
	}
	claims := claimsOf(c)
	if input.Owner == "" || !middleware.IsAdmin(claims) {
		input.Owner = claims.UserID()
	}
	v, err := h.svc.CreateProject(c.Request.Context(), input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// UpdateProject godoc
// @Summary Replace the mutable fields of a project
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body project.UpdateProjectDTO true "Project"
// @Success 200 {object} transform.ProjectView
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	var input project.UpdateProjectDTO
	if !bind(c, &input) {
		return
	}
	v, err := h.svc.UpdateProject(c.Request.Context(), id, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DeleteProject godoc
// @Summary Delete a project and its quotas
// @Tags projects
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 204
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.svc.DeleteProject(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) SubmitProject(c *gin.Context) {
	h.transition(c, h.svc.SubmitProject)
}

func (h *ProjectHandler) AcceptProject(c *gin.Context) {
	h.transition(c, h.svc.AcceptProject)
}

func (h *ProjectHandler) RejectProject(c *gin.Context) {
	h.transition(c, h.svc.RejectProject)
}

func (h *ProjectHandler) transition(c *gin.Context, apply func(ctx context.Context, id uuid.UUID) (transform.ProjectView, error)) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	v, err := apply(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}
