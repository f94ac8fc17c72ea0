package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/simqueue/internal/repository"
	"github.com/linskybing/simqueue/pkg/response"
)

type HealthHandler struct {
	repos *repository.Repos
}

func NewHealthHandler(repos *repository.Repos) *HealthHandler {
	return &HealthHandler{repos: repos}
}

// Healthz godoc
// @Summary Liveness and store reachability
// @Tags health
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /healthz [get]
func (h *HealthHandler) Healthz(c *gin.Context) {
	if err := h.repos.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "record store unavailable"})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "ok"})
}
