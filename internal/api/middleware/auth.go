package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linskybing/simqueue/internal/config"
	"github.com/linskybing/simqueue/internal/errs"
	"github.com/linskybing/simqueue/internal/repository"
	"github.com/linskybing/simqueue/pkg/response"
	"github.com/linskybing/simqueue/pkg/types"
	"github.com/linskybing/simqueue/pkg/utils"
	"github.com/rs/zerolog/log"
)

// Auth handles authorization middleware
type Auth struct {
	repos *repository.Repos
}

// NewAuth creates a new Auth middleware instance
func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// IsAdmin reports whether the caller belongs to the admin team.
func IsAdmin(claims *types.Claims) bool {
	return claims.InTeam(config.AdminTeam)
}

// --- Extractors ---

// CollabExtractor resolves the collab a request acts on
type CollabExtractor func(c *gin.Context, repos *repository.Repos) (string, error)

// FromPayload reads the collab from a JSON body field and restores the body
// for the handler.
func FromPayload(field string) CollabExtractor {
	return func(c *gin.Context, repos *repository.Repos) (string, error) {
		bodyBytes, err := c.GetRawData()
		if err != nil {
			return "", err
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var payload map[string]any
		if err := json.Unmarshal(bodyBytes, &payload); err != nil {
			return "", errs.Validationf("invalid JSON body")
		}
		collab, _ := payload[field].(string)
		if collab == "" {
			return "", errs.Validationf("%s is required", field)
		}
		return collab, nil
	}
}

// FromJobParam resolves the collab of the job named by the id path parameter.
func FromJobParam() CollabExtractor {
	return func(c *gin.Context, repos *repository.Repos) (string, error) {
		id, err := utils.ParseIDParam(c, "id")
		if err != nil {
			return "", err
		}
		j, err := repos.Job.GetByID(c.Request.Context(), id)
		if err != nil {
			return "", errs.FromStore("resolve job collab", err)
		}
		return j.CollabID, nil
	}
}

// FromProjectParam resolves the collab of the project named by the id path
// parameter.
func FromProjectParam() CollabExtractor {
	return func(c *gin.Context, repos *repository.Repos) (string, error) {
		id, err := utils.ParseUUIDParam(c, "id")
		if err != nil {
			return "", err
		}
		p, err := repos.Project.GetByID(c.Request.Context(), id)
		if err != nil {
			return "", errs.FromStore("resolve project collab", err)
		}
		return p.Collab, nil
	}
}

// --- Middleware Methods ---

// Admin checks if user is in the admin team
func (a *Auth) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaims(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}
		if !IsAdmin(claims) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "admin only"})
			return
		}
		c.Next()
	}
}

// CollabViewer checks that the caller holds any role in the collab
func (a *Auth) CollabViewer(extractor CollabExtractor) gin.HandlerFunc {
	return a.collabRole(extractor, (*types.Claims).CanView)
}

// CollabEditor checks that the caller may modify records of the collab
func (a *Auth) CollabEditor(extractor CollabExtractor) gin.HandlerFunc {
	return a.collabRole(extractor, (*types.Claims).CanEdit)
}

func (a *Auth) collabRole(extractor CollabExtractor, permitted func(*types.Claims, string) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaims(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}
		if IsAdmin(claims) {
			c.Next()
			return
		}

		collab, err := extractor(c, a.repos)
		if err != nil {
			c.AbortWithStatusJSON(errs.HTTPStatus(err), response.ErrorResponse{Error: err.Error()})
			return
		}
		if !permitted(claims, collab) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Permission denied for this collab"})
			return
		}
		c.Next()
	}
}

// LoggingMiddleware logs each request and turns errors attached with
// c.Error into a JSON response with the matching status.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()

		if len(c.Errors) != 0 {
			err := c.Errors.Last().Err
			status := errs.HTTPStatus(err)
			if status >= http.StatusInternalServerError {
				log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
			}
			if !c.Writer.Written() {
				c.AbortWithStatusJSON(status, response.ErrorResponse{Error: publicMessage(err, status)})
			}
		}

		log.Debug().
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(startTime)).
			Str("ip", c.ClientIP()).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("")
	}
}

// publicMessage hides infrastructure details from clients.
func publicMessage(err error, status int) string {
	switch {
	case errors.Is(err, errs.ErrStoreUnavailable):
		return errs.ErrStoreUnavailable.Error()
	case status == http.StatusInternalServerError && !errors.Is(err, errs.ErrParse):
		return "internal error"
	}
	return err.Error()
}

// CORSMiddleware allows the configured origins
func CORSMiddleware() gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(config.AllowedOrigins) == 0 || (len(config.AllowedOrigins) == 1 && config.AllowedOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = config.AllowedOrigins
	}
	return cors.New(corsConfig)
}
