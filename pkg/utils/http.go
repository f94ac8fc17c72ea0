package utils

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/simqueue/internal/errs"
	"github.com/linskybing/simqueue/pkg/types"
)

var ErrNoClaims = errors.New("user claims not found in context")

func ParseIDParam(c *gin.Context, param string) (uint, error) {
	idStr := c.Param(param)
	idUint64, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, errs.Validationf("invalid %s %q", param, idStr)
	}
	return uint(idUint64), nil
}

func ParseUUIDParam(c *gin.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, errs.Validationf("invalid %s %q", param, c.Param(param))
	}
	return id, nil
}

// QueryList collects a repeatable query parameter. Both ?k=a&k=b and
// ?k=a,b are accepted.
func QueryList(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// QueryTime parses an optional RFC 3339 timestamp or YYYY-MM-DD date.
func QueryTime(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, errs.Validationf("invalid %s %q", key, raw)
}

// BindPagination reads from_index and size, applying the defaults.
func BindPagination(c *gin.Context) (types.Pagination, error) {
	page := types.DefaultPagination()
	if err := c.ShouldBindQuery(&page); err != nil {
		return page, errs.Validationf("invalid pagination: %v", err)
	}
	return page, nil
}

// GetClaims returns the identity stored by the JWT middleware.
var GetClaims = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, ErrNoClaims
	}
	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}
	return claims, nil
}
