package application

import (
	"context"
	"time"

	"github.com/linskybing/simqueue/internal/domain/job"
	"github.com/linskybing/simqueue/internal/domain/project"
	"github.com/linskybing/simqueue/internal/errs"
	"github.com/linskybing/simqueue/internal/metrics"
	"github.com/linskybing/simqueue/internal/repository"
	"github.com/linskybing/simqueue/internal/transform"
)

// queuedStatuses are the statuses that count towards a platform queue.
var queuedStatuses = []job.Status{job.StatusSubmitted, job.StatusQueued, job.StatusRunning}

// StatisticsService answers aggregate questions about jobs, projects and
// quotas. Every figure is computed by the store.
type StatisticsService struct {
	Repos *repository.Repos
}

func NewStatisticsService(repos *repository.Repos) *StatisticsService {
	return &StatisticsService{Repos: repos}
}

// QueueLength counts the unfinished jobs of each platform. Platforms named in
// platforms but holding no such jobs are reported with zero counts.
func (s *StatisticsService) QueueLength(ctx context.Context, platforms []string) (views []transform.QueueLengthView, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("queue_length", start, err) }(time.Now())

	counts, err := s.Repos.Job.CountByPlatform(ctx, job.Filter{
		Status:           queuedStatuses,
		HardwarePlatform: platforms,
	})
	if err != nil {
		return nil, storeErr("queue_length", err, nil)
	}
	return transform.QueueLength(counts, platforms), nil
}

// JobCount counts the jobs matching filter per platform and status.
func (s *StatisticsService) JobCount(ctx context.Context, filter job.Filter) (views []transform.JobCountView, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("job_count", start, err) }(time.Now())

	if err := validateStatsFilter(filter); err != nil {
		return nil, err
	}
	counts, err := s.Repos.Job.CountByPlatform(ctx, filter)
	if err != nil {
		return nil, storeErr("job_count", err, nil)
	}
	return transform.JobCounts(counts), nil
}

// ActiveUsers counts the distinct submitters of the jobs matching filter on
// each platform.
func (s *StatisticsService) ActiveUsers(ctx context.Context, filter job.Filter) (views []transform.ActiveUsersView, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("active_users", start, err) }(time.Now())

	if err := validateStatsFilter(filter); err != nil {
		return nil, err
	}
	counts, err := s.Repos.Job.ActiveUsers(ctx, filter)
	if err != nil {
		return nil, storeErr("active_users", err, nil)
	}
	return transform.ActiveUsers(counts), nil
}

// ProjectCount counts projects per derived status. Without a status filter
// every status is reported.
func (s *StatisticsService) ProjectCount(ctx context.Context, filter project.Filter) (views []transform.ProjectCountView, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("project_count", start, err) }(time.Now())

	for _, st := range filter.Status {
		if !st.Valid() {
			return nil, errs.Validationf("unknown project status %q", st)
		}
	}
	counts, err := s.Repos.Project.CountByStatus(ctx, filter)
	if err != nil {
		return nil, storeErr("project_count", err, nil)
	}
	return transform.ProjectCounts(counts), nil
}

// QuotaUsage sums limits and usage over every quota of each platform.
func (s *StatisticsService) QuotaUsage(ctx context.Context) (views []transform.QuotaUsageView, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("quota_usage", start, err) }(time.Now())

	usage, err := s.Repos.Quota.UsageByPlatform(ctx)
	if err != nil {
		return nil, storeErr("quota_usage", err, nil)
	}
	return transform.QuotaUsage(usage), nil
}

func validateStatsFilter(f job.Filter) error {
	if err := validateJobFilter(f); err != nil {
		return err
	}
	if f.DateRangeStart != nil && f.DateRangeEnd != nil && f.DateRangeEnd.Before(*f.DateRangeStart) {
		return errs.Validationf("date_range_end is before date_range_start")
	}
	return nil
}
