package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/linskybing/simqueue/internal/domain/job"
	"github.com/linskybing/simqueue/internal/repository"
	"github.com/linskybing/simqueue/internal/testutils"
	"github.com/linskybing/simqueue/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 12, 0, 0, 0, time.UTC)
}

func seedJobs(t *testing.T, repos *repository.Repos, jobs ...*job.Job) {
	t.Helper()
	for _, j := range jobs {
		if j.Code == "" {
			j.Code = "print('hello')"
		}
		if j.Status == "" {
			j.Status = job.StatusSubmitted
		}
		require.NoError(t, repos.Job.Create(context.Background(), j))
	}
}

func ids(jobs []job.Job) []uint {
	out := make([]uint, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func TestJobQueryFilters(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))

	usage := 1.5
	seedJobs(t, repos,
		&job.Job{CollabID: "c1", UserID: "u1", HardwarePlatform: "SpiNNaker", TimestampSubmission: day(2), Status: job.StatusFinished, ResourceUsage: &usage},
		&job.Job{CollabID: "c1", UserID: "u2", HardwarePlatform: "SpiNNaker", TimestampSubmission: day(5), Status: job.StatusRunning},
		&job.Job{CollabID: "c2", UserID: "u1", HardwarePlatform: "SpiNNaker", TimestampSubmission: day(9), Status: job.StatusError},
		&job.Job{CollabID: "c2", UserID: "u3", HardwarePlatform: "BrainScaleS", TimestampSubmission: day(3)},
		&job.Job{CollabID: "c3", UserID: "u3", HardwarePlatform: "BrainScaleS", TimestampSubmission: time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC)},
	)
	page := types.Pagination{Size: 100}
	start, end := day(1), day(5)

	cases := []struct {
		name   string
		filter job.Filter
		want   []uint
	}{
		{"no filter", job.Filter{}, []uint{1, 2, 3, 4, 5}},
		{"singleton platform", job.Filter{HardwarePlatform: []string{"SpiNNaker"}}, []uint{1, 2, 3}},
		{"duplicated singleton", job.Filter{CollabID: []string{"c2", "c2"}}, []uint{3, 4}},
		{"collab set", job.Filter{CollabID: []string{"c1", "c3"}}, []uint{1, 2, 5}},
		{"user and platform", job.Filter{UserID: []string{"u1"}, HardwarePlatform: []string{"SpiNNaker"}}, []uint{1, 3}},
		{"status membership", job.Filter{Status: []job.Status{job.StatusFinished, job.StatusError}}, []uint{1, 3}},
		{"status single", job.Filter{Status: []job.Status{job.StatusSubmitted}}, []uint{4, 5}},
		{"start only", job.Filter{DateRangeStart: &start}, []uint{1, 2, 3, 4}},
		{"end only", job.Filter{DateRangeEnd: &end}, []uint{1, 2, 4, 5}},
		{"inclusive range", job.Filter{DateRangeStart: &start, DateRangeEnd: &end}, []uint{1, 2, 4}},
		{"no match", job.Filter{CollabID: []string{"nobody"}}, []uint{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			jobs, err := repos.Job.Query(ctx, tc.filter, nil, page)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(jobs))
		})
	}
}

func TestJobQueryPaginationIsContiguous(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))
	for i := 1; i <= 7; i++ {
		seedJobs(t, repos, &job.Job{CollabID: "c", UserID: "u", HardwarePlatform: "SpiNNaker", TimestampSubmission: day(i)})
	}

	all, err := repos.Job.Query(ctx, job.Filter{}, nil, types.Pagination{Size: 100})
	require.NoError(t, err)

	page, err := repos.Job.Query(ctx, job.Filter{}, nil, types.Pagination{FromIndex: 2, Size: 3})
	require.NoError(t, err)
	assert.Equal(t, ids(all[2:5]), ids(page))

	tail, err := repos.Job.Query(ctx, job.Filter{}, nil, types.Pagination{FromIndex: 6, Size: 3})
	require.NoError(t, err)
	assert.Len(t, tail, 1)
}

func TestJobQueryHydratesDataWithProjection(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))

	j := &job.Job{
		CollabID: "c", UserID: "u", HardwarePlatform: "SpiNNaker", TimestampSubmission: day(1),
		InputData: []job.DataItem{{URL: "https://example.org/a"}, {URL: "https://example.org/b"}},
	}
	seedJobs(t, repos, j)
	require.NoError(t, repos.Job.AppendOutputData(ctx, j, []job.DataItem{{URL: "https://example.org/out"}}))

	jobs, err := repos.Job.Query(ctx, job.Filter{}, []string{"id", "collab_id"}, types.Pagination{Size: 10})
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	got := jobs[0]
	assert.Equal(t, "c", got.CollabID)
	assert.Empty(t, got.UserID, "unselected column should stay empty")
	require.Len(t, got.InputData, 2)
	assert.Equal(t, "https://example.org/a", got.InputData[0].URL)
	assert.Equal(t, "https://example.org/b", got.InputData[1].URL)
	require.Len(t, got.OutputData, 1)
	assert.Equal(t, "https://example.org/out", got.OutputData[0].URL)
}

func TestJobCommentsAndLog(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))
	j := &job.Job{CollabID: "c", UserID: "u", HardwarePlatform: "SpiNNaker", TimestampSubmission: day(1)}
	seedJobs(t, repos, j)

	for _, content := range []string{"first", "second"} {
		require.NoError(t, repos.Job.CreateComment(ctx, &job.Comment{Content: content, User: "u", JobID: j.ID, CreatedTime: day(2)}))
	}
	comments, err := repos.Job.FindComments(ctx, j.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)

	_, err = repos.Job.FindLog(ctx, j.ID)
	require.Error(t, err)

	require.NoError(t, repos.Job.SaveLog(ctx, &job.Log{JobID: j.ID, Content: "line 1"}))
	require.NoError(t, repos.Job.SaveLog(ctx, &job.Log{JobID: j.ID, Content: "line 1\nline 2"}))
	l, err := repos.Job.FindLog(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, "line 1\nline 2", l.Content)
}
