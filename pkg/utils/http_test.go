package utils

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/simqueue/internal/errs"
	"github.com/linskybing/simqueue/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestQueryList(t *testing.T) {
	c := testContext("/jobs?status=queued&status=running,%20error&collab_id=")
	assert.Equal(t, []string{"queued", "running", "error"}, QueryList(c, "status"))
	assert.Empty(t, QueryList(c, "collab_id"))
	assert.Empty(t, QueryList(c, "user_id"))
}

func TestQueryTime(t *testing.T) {
	c := testContext("/jobs?a=2024-01-01&b=2024-01-01T12:00:00%2B02:00&c=01/02/2024")

	got, err := QueryTime(c, "a")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *got)

	got, err = QueryTime(c, "b")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), *got)
	assert.Equal(t, time.UTC, got.Location())

	_, err = QueryTime(c, "c")
	assert.True(t, errors.Is(err, errs.ErrValidation))

	got, err = QueryTime(c, "missing")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestBindPagination(t *testing.T) {
	page, err := BindPagination(testContext("/jobs"))
	require.NoError(t, err)
	assert.Equal(t, types.DefaultPagination(), page)

	page, err = BindPagination(testContext("/jobs?from_index=20&size=5"))
	require.NoError(t, err)
	assert.Equal(t, types.Pagination{FromIndex: 20, Size: 5}, page)

	_, err = BindPagination(testContext("/jobs?size=ten"))
	assert.True(t, errors.Is(err, errs.ErrValidation))
}

func TestParseParams(t *testing.T) {
	c := testContext("/jobs/7")
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	id, err := ParseIDParam(c, "id")
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)

	c.Params = gin.Params{{Key: "id", Value: "-1"}}
	_, err = ParseIDParam(c, "id")
	assert.True(t, errors.Is(err, errs.ErrValidation))

	c.Params = gin.Params{{Key: "id", Value: "nope"}}
	_, err = ParseUUIDParam(c, "id")
	assert.True(t, errors.Is(err, errs.ErrValidation))
}
