package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/simqueue/internal/application"
	"github.com/linskybing/simqueue/internal/domain/quota"
	"github.com/linskybing/simqueue/pkg/response"
	"github.com/linskybing/simqueue/pkg/utils"
)

type QuotaHandler struct {
	svc *application.QuotaService
}

func NewQuotaHandler(svc *application.QuotaService) *QuotaHandler {
	return &QuotaHandler{svc: svc}
}

// ListQuotas godoc
// @Summary List the quotas of a project
// @Tags quotas
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} transform.QuotaView
// @Router /projects/{id}/quotas [get]
func (h *QuotaHandler) ListQuotas(c *gin.Context) {
	projectID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	page, err := utils.BindPagination(c)
	if err != nil {
		fail(c, err)
		return
	}
	views, err := h.svc.QueryQuotas(c.Request.Context(), projectID, page)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetQuota godoc
// @Summary Get one quota of a project
// @Tags quotas
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Param quota_id path uint true "Quota ID"
// @Success 200 {object} transform.QuotaView
// @Failure 404 {object} response.ErrorResponse "Quota not found"
// @Router /projects/{id}/quotas/{quota_id} [get]
func (h *QuotaHandler) GetQuota(c *gin.Context) {
	projectID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	quotaID, err := utils.ParseIDParam(c, "quota_id")
	if err != nil {
		fail(c, err)
		return
	}
	v, err := h.svc.GetQuota(c.Request.Context(), quotaID, projectID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// CreateQuota godoc
// @Summary Add a platform quota to a project
// @Tags quotas
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param quota body quota.CreateQuotaDTO true "Quota"
// @Success 201 {object} transform.QuotaView
// @Router /projects/{id}/quotas [post]
func (h *QuotaHandler) CreateQuota(c *gin.Context) {
	projectID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	var input quota.CreateQuotaDTO
	if !bind(c, &input) {
		return
	}
	v, err := h.svc.CreateQuota(c.Request.Context(), projectID, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// UpdateQuota godoc
// @Summary Set the limit and usage of a quota
// @Tags quotas
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param quota_id path uint true "Quota ID"
// @Param quota body quota.UpdateQuotaDTO true "Quota"
// @Success 200 {object} transform.QuotaView
// @Router /projects/{id}/quotas/{quota_id} [put]
func (h *QuotaHandler) UpdateQuota(c *gin.Context) {
	projectID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	quotaID, err := utils.ParseIDParam(c, "quota_id")
	if err != nil {
		fail(c, err)
		return
	}
	var input quota.UpdateQuotaDTO
	if !bind(c, &input) {
		return
	}
	v, err := h.svc.UpdateQuota(c.Request.Context(), projectID, quotaID, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *QuotaHandler) DeleteQuota(c *gin.Context) {
	projectID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	quotaID, err := utils.ParseIDParam(c, "quota_id")
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.svc.DeleteQuota(c.Request.Context(), quotaID, projectID); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QuotaHandler) DeleteAllQuotas(c *gin.Context) {
	projectID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	n, err := h.svc.DeleteAllQuotasForProject(c.Request.Context(), projectID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DeletedResponse{Deleted: n})
}
