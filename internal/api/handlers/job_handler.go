package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/simqueue/internal/api/middleware"
	"github.com/linskybing/simqueue/internal/application"
	"github.com/linskybing/simqueue/internal/domain/job"
	"github.com/linskybing/simqueue/pkg/utils"
)

type JobHandler struct {
	svc *application.JobService
}

func NewJobHandler(svc *application.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

// ListJobs godoc
// @Summary Query jobs
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param status query []string false "Job status" collectionFormat(multi)
// @Param collab_id query []string false "Collab" collectionFormat(multi)
// @Param user_id query []string false "Submitting user" collectionFormat(multi)
// @Param hardware_platform query []string false "Platform" collectionFormat(multi)
// @Param date_range_start query string false "Earliest submission"
// @Param date_range_end query string false "Latest submission"
// @Param fields query []string false "Columns to return" collectionFormat(multi)
// @Param from_index query int false "Offset"
// @Param size query int false "Page size"
// @Success 200 {array} transform.JobView
// @Failure 400 {object} response.ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	claims := claimsOf(c)
	filter := job.Filter{
		CollabID:         utils.QueryList(c, "collab_id"),
		UserID:           utils.QueryList(c, "user_id"),
		HardwarePlatform: utils.QueryList(c, "hardware_platform"),
	}
	for _, s := range utils.QueryList(c, "status") {
		filter.Status = append(filter.Status, job.Status(s))
	}

	var err error
	if filter.DateRangeStart, err = utils.QueryTime(c, "date_range_start"); err != nil {
		fail(c, err)
		return
	}
	if filter.DateRangeEnd, err = utils.QueryTime(c, "date_range_end"); err != nil {
		fail(c, err)
		return
	}
	page, err := utils.BindPagination(c)
	if err != nil {
		fail(c, err)
		return
	}

	if !middleware.IsAdmin(claims) {
		if len(filter.CollabID) == 0 {
			filter.UserID = []string{claims.UserID()}
		} else if !viewableCollabs(claims, filter.CollabID) {
			forbid(c)
			return
		}
	}

	fields := utils.QueryList(c, "fields")
	views, err := h.svc.QueryJobs(c.Request.Context(), filter, fields, page)
	if err != nil {
		fail(c, err)
		return
	}
	if len(fields) == 0 {
		c.JSON(http.StatusOK, views)
		return
	}
	selected := make([]map[string]any, len(views))
	for i, v := range views {
		selected[i] = v.Select(fields)
	}
	c.JSON(http.StatusOK, selected)
}

// GetJob godoc
// @Summary Get job by ID
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Job ID"
// @Success 200 {object} transform.JobView
// @Failure 404 {object} response.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	v, err := h.svc.GetJob(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// SubmitJob godoc
// @Summary Submit a job
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param job body job.SubmitJobDTO true "Job"
// @Success 201 {object} transform.JobView
// @Failure 400 {object} response.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) SubmitJob(c *gin.Context) {
	var input job.SubmitJobDTO
	if !bind(c, &input) {
		return
	}
	claims := claimsOf(c)
	if input.UserID == "" || !middleware.IsAdmin(claims) {
		input.UserID = claims.UserID()
	}

	v, err := h.svc.SubmitJob(c.Request.Context(), input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// UpdateStatus godoc
// @Summary Report job progress
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Job ID"
// @Param status body job.StatusUpdateDTO true "Status"
// @Success 200 {object} transform.JobView
// @Router /jobs/{id}/status [put]
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	var input job.StatusUpdateDTO
	if !bind(c, &input) {
		return
	}
	v, err := h.svc.UpdateJobStatus(c.Request.Context(), id, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *JobHandler) GetComments(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	comments, err := h.svc.GetComments(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *JobHandler) AddComment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	var input job.CommentDTO
	if !bind(c, &input) {
		return
	}
	comment, err := h.svc.AddComment(c.Request.Context(), id, claimsOf(c).UserID(), input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *JobHandler) GetLog(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	l, err := h.svc.GetLog(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *JobHandler) SaveLog(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	var input struct {
		Content string `json:"content" binding:"required"`
	}
	if !bind(c, &input) {
		return
	}
	l, err := h.svc.SaveLog(c.Request.Context(), id, input.Content)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}
