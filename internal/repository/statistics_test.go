package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/linskybing/simqueue/internal/domain/job"
	"github.com/linskybing/simqueue/internal/domain/project"
	"github.com/linskybing/simqueue/internal/domain/quota"
	"github.com/linskybing/simqueue/internal/repository"
	"github.com/linskybing/simqueue/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobCountByPlatform(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))

	seedJobs(t, repos,
		&job.Job{CollabID: "c1", UserID: "u1", HardwarePlatform: "SpiNNaker", TimestampSubmission: day(2)},
		&job.Job{CollabID: "c1", UserID: "u1", HardwarePlatform: "SpiNNaker", TimestampSubmission: day(3)},
		&job.Job{CollabID: "c1", UserID: "u2", HardwarePlatform: "SpiNNaker", TimestampSubmission: day(4), Status: job.StatusRunning},
		&job.Job{CollabID: "c2", UserID: "u3", HardwarePlatform: "BrainScaleS", TimestampSubmission: day(9), Status: job.StatusFinished},
	)

	counts, err := repos.Job.CountByPlatform(ctx, job.Filter{})
	require.NoError(t, err)
	assert.Equal(t, []job.PlatformStatusCount{
		{Platform: "BrainScaleS", Status: job.StatusFinished, Jobs: 1},
		{Platform: "SpiNNaker", Status: job.StatusRunning, Jobs: 1},
		{Platform: "SpiNNaker", Status: job.StatusSubmitted, Jobs: 2},
	}, counts)

	start, end := day(1), day(5)
	counts, err = repos.Job.CountByPlatform(ctx, job.Filter{
		Status:         []job.Status{job.StatusSubmitted, job.StatusFinished},
		DateRangeStart: &start,
		DateRangeEnd:   &end,
	})
	require.NoError(t, err)
	assert.Equal(t, []job.PlatformStatusCount{
		{Platform: "SpiNNaker", Status: job.StatusSubmitted, Jobs: 2},
	}, counts)

	users, err := repos.Job.ActiveUsers(ctx, job.Filter{})
	require.NoError(t, err)
	assert.Equal(t, []job.PlatformUserCount{
		{Platform: "BrainScaleS", Users: 1},
		{Platform: "SpiNNaker", Users: 2},
	}, users)

	users, err = repos.Job.ActiveUsers(ctx, job.Filter{CollabID: []string{"nobody"}})
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestProjectCountByStatus(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	underReview := newProject("c1", "bob")
	underReview.SubmissionDate = project.DateOf(feb)
	accepted := newProject("c2", "bob")
	accepted.SubmissionDate = project.DateOf(feb)
	require.NoError(t, accepted.Accept(feb))
	for _, p := range []*project.Project{newProject("c1", "alice"), newProject("c2", "alice"), underReview, accepted} {
		require.NoError(t, repos.Project.Create(ctx, p))
	}

	counts, err := repos.Project.CountByStatus(ctx, project.Filter{})
	require.NoError(t, err)
	assert.Equal(t, map[project.Status]int64{
		project.StatusInPrep:      2,
		project.StatusUnderReview: 1,
		project.StatusRejected:    0,
		project.StatusAccepted:    1,
	}, counts)

	counts, err = repos.Project.CountByStatus(ctx, project.Filter{
		Status: []project.Status{project.StatusInPrep},
		Owner:  []string{"bob"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[project.Status]int64{project.StatusInPrep: 0}, counts)
}

func TestQuotaUsageByPlatform(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))

	a, b := newProject("c1", "alice"), newProject("c2", "bob")
	require.NoError(t, repos.Project.Create(ctx, a))
	require.NoError(t, repos.Project.Create(ctx, b))
	for _, q := range []*quota.Quota{
		{Units: "core-hours", Limit: 100, Usage: 30, Platform: "SpiNNaker", ProjectID: a.ID},
		{Units: "core-hours", Limit: 50, Usage: 60, Platform: "SpiNNaker", ProjectID: b.ID},
		{Units: "wafer-hours", Limit: 10, Usage: 1, Platform: "BrainScaleS", ProjectID: a.ID},
	} {
		require.NoError(t, repos.Quota.Create(ctx, q))
	}

	usage, err := repos.Quota.UsageByPlatform(ctx)
	require.NoError(t, err)
	assert.Equal(t, []quota.PlatformUsage{
		{Platform: "BrainScaleS", Units: "wafer-hours", Quotas: 1, TotalLimit: 10, TotalUsage: 1},
		{Platform: "SpiNNaker", Units: "core-hours", Quotas: 2, TotalLimit: 150, TotalUsage: 90},
	}, usage)
}
