package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/simqueue/internal/domain/job"
	"github.com/linskybing/simqueue/internal/domain/project"
	"github.com/linskybing/simqueue/internal/errs"
	"github.com/linskybing/simqueue/internal/repository/mock"
	"github.com/linskybing/simqueue/internal/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueLength(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	seed(t, f, &job.Job{HardwarePlatform: "SpiNNaker", TimestampSubmission: now})
	seed(t, f, &job.Job{HardwarePlatform: "SpiNNaker", TimestampSubmission: now, Status: job.StatusRunning})
	seed(t, f, &job.Job{HardwarePlatform: "SpiNNaker", TimestampSubmission: now, Status: job.StatusFinished})
	seed(t, f, &job.Job{HardwarePlatform: "BrainScaleS", TimestampSubmission: now, Status: job.StatusQueued})

	all, err := f.svc.Statistics.QueueLength(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []transform.QueueLengthView{
		{Platform: "BrainScaleS", Queued: 1},
		{Platform: "SpiNNaker", Submitted: 1, Running: 1},
	}, all)

	named, err := f.svc.Statistics.QueueLength(ctx, []string{"SpiNNaker", "Spikey"})
	require.NoError(t, err)
	assert.Equal(t, []transform.QueueLengthView{
		{Platform: "SpiNNaker", Submitted: 1, Running: 1},
		{Platform: "Spikey"},
	}, named, "named platforms without jobs report zero")
}

func TestJobCountAndActiveUsers(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	jan := func(d int) time.Time { return time.Date(2024, 1, d, 8, 0, 0, 0, time.UTC) }
	seed(t, f, &job.Job{UserID: "alice", HardwarePlatform: "SpiNNaker", TimestampSubmission: jan(2), Status: job.StatusFinished})
	seed(t, f, &job.Job{UserID: "bob", HardwarePlatform: "SpiNNaker", TimestampSubmission: jan(3), Status: job.StatusFinished})
	seed(t, f, &job.Job{UserID: "bob", HardwarePlatform: "SpiNNaker", TimestampSubmission: jan(20), Status: job.StatusError})

	start, end := jan(1), jan(10)
	counts, err := f.svc.Statistics.JobCount(ctx, job.Filter{DateRangeStart: &start, DateRangeEnd: &end})
	require.NoError(t, err)
	assert.Equal(t, []transform.JobCountView{{Platform: "SpiNNaker", Status: job.StatusFinished, Jobs: 2}}, counts)

	users, err := f.svc.Statistics.ActiveUsers(ctx, job.Filter{Status: []job.Status{job.StatusError}})
	require.NoError(t, err)
	assert.Equal(t, []transform.ActiveUsersView{{Platform: "SpiNNaker", Users: 1}}, users)

	_, err = f.svc.Statistics.JobCount(ctx, job.Filter{DateRangeStart: &end, DateRangeEnd: &start})
	assert.ErrorIs(t, err, errs.ErrValidation, "inverted date range")
	_, err = f.svc.Statistics.ActiveUsers(ctx, job.Filter{Status: []job.Status{"paused"}})
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestProjectCount(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.acceptedProject(t, 0)
	_, err := f.svc.Project.CreateProject(ctx, projectDTO())
	require.NoError(t, err)

	counts, err := f.svc.Statistics.ProjectCount(ctx, project.Filter{})
	require.NoError(t, err)
	assert.Equal(t, []transform.ProjectCountView{
		{Status: project.StatusInPrep, Projects: 1},
		{Status: project.StatusUnderReview, Projects: 0},
		{Status: project.StatusRejected, Projects: 0},
		{Status: project.StatusAccepted, Projects: 1},
	}, counts)

	_, err = f.svc.Statistics.ProjectCount(ctx, project.Filter{Status: []project.Status{"archived"}})
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestQuotaUsage(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := f.acceptedProject(t, 10, "SpiNNaker")
	b := f.acceptedProject(t, 30, "SpiNNaker")

	for id, usage := range map[uint]float64{1: 12, 2: 4} {
		j := &job.Job{ID: id, Status: job.StatusFinished, HardwarePlatform: "SpiNNaker", ProjectID: &a, ResourceUsage: ptr(usage)}
		require.NoError(t, f.svc.Quota.ChargeJob(ctx, j))
	}
	require.NoError(t, f.svc.Quota.ChargeJob(ctx, &job.Job{ID: 3, Status: job.StatusFinished, HardwarePlatform: "SpiNNaker", ProjectID: &b, ResourceUsage: ptr(4.0)}))

	usage, err := f.svc.Statistics.QuotaUsage(ctx)
	require.NoError(t, err)
	assert.Equal(t, []transform.QuotaUsageView{{
		Platform:     "SpiNNaker",
		Units:        "core-hours",
		Quotas:       2,
		Limit:        40,
		Usage:        20,
		Remaining:    20,
		UsagePercent: 50,
		Exceeded:     false,
	}}, usage)
}

func TestQuotaUsageStoreUnavailable(t *testing.T) {
	f := setup(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuota := mock.NewMockQuotaRepo(ctrl)
	mockQuota.EXPECT().UsageByPlatform(gomock.Any()).Return(nil, errors.New("connection reset by peer"))
	f.repos.Quota = mockQuota

	_, err := f.svc.Statistics.QuotaUsage(context.Background())
	assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
}
