package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/simqueue/internal/application"
	"github.com/linskybing/simqueue/internal/domain/project"
	"github.com/linskybing/simqueue/internal/domain/quota"
	"github.com/linskybing/simqueue/internal/repository"
	"github.com/linskybing/simqueue/internal/testutils"
	"github.com/linskybing/simqueue/pkg/units"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

var now = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

type fixture struct {
	svc   *application.Services
	repos *repository.Repos
	clock *testingclock.FakePassiveClock
}

func setup(t *testing.T) *fixture {
	t.Helper()
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))
	clk := testingclock.NewFakePassiveClock(now)
	table := units.New(map[string]string{"platform_A": "core-hours", "SpiNNaker": "core-hours"})
	return &fixture{
		svc:   application.New(repos, table, clk),
		repos: repos,
		clock: clk,
	}
}

// acceptedProject stores an accepted project with one quota per platform.
func (f *fixture) acceptedProject(t *testing.T, limit float64, platforms ...string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	p, err := f.svc.Project.CreateProject(ctx, project.CreateProjectDTO{
		Collab: "neuro", Owner: "alice", Title: "Cortex", Abstract: "a", Submitted: true,
	})
	require.NoError(t, err)
	_, err = f.svc.Project.AcceptProject(ctx, p.ID)
	require.NoError(t, err)

	for _, platform := range platforms {
		_, err := f.svc.Quota.CreateQuota(ctx, p.ID, quota.CreateQuotaDTO{
			Limit: &limit, Platform: platform, Units: "core-hours",
		})
		require.NoError(t, err)
	}
	return p.ID
}

func ptr[T any](v T) *T { return &v }
