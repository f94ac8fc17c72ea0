package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/simqueue/internal/application"
	"github.com/linskybing/simqueue/internal/domain/job"
	"github.com/linskybing/simqueue/internal/domain/project"
	"github.com/linskybing/simqueue/pkg/utils"
)

// StatisticsHandler serves aggregate figures. Filtering by collab requires
// view access to it; unfiltered figures cover every collab.
type StatisticsHandler struct {
	svc *application.StatisticsService
}

func NewStatisticsHandler(svc *application.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{svc: svc}
}

// QueueLength godoc
// @Summary Unfinished jobs per platform
// @Tags statistics
// @Security BearerAuth
// @Produce json
// @Param hardware_platform query []string false "Platform" collectionFormat(multi)
// @Success 200 {array} transform.QueueLengthView
// @Router /statistics/queue-length [get]
func (h *StatisticsHandler) QueueLength(c *gin.Context) {
	views, err := h.svc.QueueLength(c.Request.Context(), utils.QueryList(c, "hardware_platform"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// JobCount godoc
// @Summary Jobs per platform and status
// @Tags statistics
// @Security BearerAuth
// @Produce json
// @Param status query []string false "Job status" collectionFormat(multi)
// @Param collab_id query []string false "Collab" collectionFormat(multi)
// @Param hardware_platform query []string false "Platform" collectionFormat(multi)
// @Param date_range_start query string false "Earliest submission"
// @Param date_range_end query string false "Latest submission"
// @Success 200 {array} transform.JobCountView
// @Failure 400 {object} response.ErrorResponse
// @Router /statistics/job-count [get]
func (h *StatisticsHandler) JobCount(c *gin.Context) {
	filter, ok := h.jobFilter(c)
	if !ok {
		return
	}
	views, err := h.svc.JobCount(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// ActiveUsers godoc
// @Summary Distinct submitters per platform
// @Tags statistics
// @Security BearerAuth
// @Produce json
// @Param status query []string false "Job status" collectionFormat(multi)
// @Param collab_id query []string false "Collab" collectionFormat(multi)
// @Param hardware_platform query []string false "Platform" collectionFormat(multi)
// @Param date_range_start query string false "Earliest submission"
// @Param date_range_end query string false "Latest submission"
// @Success 200 {array} transform.ActiveUsersView
// @Failure 400 {object} response.ErrorResponse
// @Router /statistics/active-users [get]
func (h *StatisticsHandler) ActiveUsers(c *gin.Context) {
	filter, ok := h.jobFilter(c)
	if !ok {
		return
	}
	views, err := h.svc.ActiveUsers(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// ProjectCount godoc
// @Summary Projects per derived status
// @Tags statistics
// @Security BearerAuth
// @Produce json
// @Param status query []string false "Derived status" collectionFormat(multi)
// @Param collab query []string false "Collab" collectionFormat(multi)
// @Success 200 {array} transform.ProjectCountView
// @Failure 400 {object} response.ErrorResponse
// @Router /statistics/project-count [get]
func (h *StatisticsHandler) ProjectCount(c *gin.Context) {
	filter := project.Filter{Collab: utils.QueryList(c, "collab")}
	for _, s := range utils.QueryList(c, "status") {
		filter.Status = append(filter.Status, project.Status(s))
	}
	if !viewableCollabs(claimsOf(c), filter.Collab) {
		forbid(c)
		return
	}
	views, err := h.svc.ProjectCount(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// QuotaUsage godoc
// @Summary Quota limits and usage per platform
// @Tags statistics
// @Security BearerAuth
// @Produce json
// @Success 200 {array} transform.QuotaUsageView
// @Router /statistics/quota-usage [get]
func (h *StatisticsHandler) QuotaUsage(c *gin.Context) {
	views, err := h.svc.QuotaUsage(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *StatisticsHandler) jobFilter(c *gin.Context) (job.Filter, bool) {
	filter := job.Filter{
		CollabID:         utils.QueryList(c, "collab_id"),
		HardwarePlatform: utils.QueryList(c, "hardware_platform"),
	}
	for _, s := range utils.QueryList(c, "status") {
		filter.Status = append(filter.Status, job.Status(s))
	}
	var err error
	if filter.DateRangeStart, err = utils.QueryTime(c, "date_range_start"); err != nil {
		fail(c, err)
		return filter, false
	}
	if filter.DateRangeEnd, err = utils.QueryTime(c, "date_range_end"); err != nil {
		fail(c, err)
		return filter, false
	}
	if !viewableCollabs(claimsOf(c), filter.CollabID) {
		forbid(c)
		return filter, false
	}
	return filter, true
}
