package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/simqueue/internal/api/middleware"
	"github.com/linskybing/simqueue/internal/errs"
	"github.com/linskybing/simqueue/pkg/response"
	"github.com/linskybing/simqueue/pkg/types"
	"github.com/linskybing/simqueue/pkg/utils"
)

// bind decodes the JSON body, reporting failures as validation errors.
func bind(c *gin.Context, dto any) bool {
	if err := c.ShouldBindJSON(dto); err != nil {
		_ = c.Error(errs.Validationf("%v", err))
		return false
	}
	return true
}

// fail attaches err for the logging middleware to report.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
}

func forbid(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Permission denied for this collab"})
}

func claimsOf(c *gin.Context) *types.Claims {
	claims, err := utils.GetClaims(c)
	if err != nil {
		return &types.Claims{}
	}
	return claims
}

// viewableCollabs checks that the caller may view every requested collab.
func viewableCollabs(claims *types.Claims, collabs []string) bool {
	if middleware.IsAdmin(claims) {
		return true
	}
	for _, collab := range collabs {
		if !claims.CanView(collab) {
			return false
		}
	}
	return true
}
