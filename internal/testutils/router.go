package testutils

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/simqueue/internal/api/middleware"
	"github.com/linskybing/simqueue/internal/api/routes"
	"github.com/linskybing/simqueue/internal/application"
	"github.com/linskybing/simqueue/internal/config"
	"github.com/linskybing/simqueue/internal/repository"
	"github.com/linskybing/simqueue/pkg/units"
	"k8s.io/utils/clock"
)

const (
	TestSecret    = "test-secret"
	TestIssuer    = "simqueue-test"
	TestAdminTeam = "simqueue-admins"
)

// SetupRouter builds the full API on a fresh SQLite store.
func SetupRouter(t testing.TB, clk clock.PassiveClock) (*gin.Engine, *repository.Repos) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.JwtSecret = TestSecret
	config.Issuer = TestIssuer
	config.AdminTeam = TestAdminTeam
	middleware.Init()

	repos := repository.NewRepositories(NewSQLiteDB(t))
	svc := application.New(repos, units.New(units.Defaults), clk)

	r := gin.New()
	r.Use(middleware.LoggingMiddleware())
	routes.RegisterRoutes(r, repos, svc)
	return r, repos
}

// Token signs a bearer token for the given user and teams.
func Token(t testing.TB, userID string, teams ...string) string {
	t.Helper()
	token, err := middleware.GenerateToken(userID, userID, teams, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return "Bearer " + token
}
