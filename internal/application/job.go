package application

import (
	"context"
	"encoding/json"
	"time"

	"github.com/linskybing/simqueue/internal/domain/job"
	"github.com/linskybing/simqueue/internal/domain/project"
	"github.com/linskybing/simqueue/internal/errs"
	"github.com/linskybing/simqueue/internal/metrics"
	"github.com/linskybing/simqueue/internal/repository"
	"github.com/linskybing/simqueue/internal/transform"
	"github.com/linskybing/simqueue/pkg/types"
	"github.com/rs/zerolog/log"
	"k8s.io/utils/clock"
)

type JobService struct {
	Repos *repository.Repos
	Units transform.UnitLookup
	quota *QuotaService
	clock clock.PassiveClock
}

func NewJobService(repos *repository.Repos, units transform.UnitLookup, quota *QuotaService, clk clock.PassiveClock) *JobService {
	return &JobService{
		Repos: repos,
		Units: units,
		quota: quota,
		clock: clk,
	}
}

// QueryJobs returns one page of jobs matching filter, oldest first, with
// their data items attached.
func (s *JobService) QueryJobs(ctx context.Context, filter job.Filter, fields []string, page types.Pagination) (views []transform.JobView, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("query_jobs", start, err) }(time.Now())

	if err := validateJobFilter(filter); err != nil {
		return nil, err
	}
	if err := validatePage(page); err != nil {
		return nil, err
	}
	cols, err := projection(fields)
	if err != nil {
		return nil, err
	}

	jobs, err := s.Repos.Job.Query(ctx, filter, cols, page)
	if err != nil {
		return nil, storeErr("query_jobs", err, nil)
	}
	return transform.Jobs(jobs, s.Units)
}

func (s *JobService) GetJob(ctx context.Context, id uint) (transform.JobView, error) {
	j, err := s.Repos.Job.GetByID(ctx, id)
	if err != nil {
		return transform.JobView{}, storeErr("get_job", err, ErrJobNotFound)
	}
	return transform.Job(j, s.Units)
}

func (s *JobService) GetComments(ctx context.Context, jobID uint) ([]job.Comment, error) {
	if _, err := s.Repos.Job.GetByID(ctx, jobID); err != nil {
		return nil, storeErr("get_comments", err, ErrJobNotFound)
	}
	comments, err := s.Repos.Job.FindComments(ctx, jobID)
	if err != nil {
		return nil, storeErr("get_comments", err, nil)
	}
	return comments, nil
}

func (s *JobService) AddComment(ctx context.Context, jobID uint, user string, input job.CommentDTO) (*job.Comment, error) {
	if err := validateDTO(input); err != nil {
		return nil, err
	}
	if _, err := s.Repos.Job.GetByID(ctx, jobID); err != nil {
		return nil, storeErr("add_comment", err, ErrJobNotFound)
	}

	c := &job.Comment{
		Content:     input.Content,
		CreatedTime: s.clock.Now().UTC(),
		User:        user,
		JobID:       jobID,
	}
	if err := s.Repos.Job.CreateComment(ctx, c); err != nil {
		return nil, storeErr("add_comment", err, nil)
	}
	return c, nil
}

func (s *JobService) GetLog(ctx context.Context, jobID uint) (*job.Log, error) {
	l, err := s.Repos.Job.FindLog(ctx, jobID)
	if err != nil {
		return nil, storeErr("get_log", err, ErrLogNotFound)
	}
	return l, nil
}

// SaveLog replaces the execution log of a job.
func (s *JobService) SaveLog(ctx context.Context, jobID uint, content string) (*job.Log, error) {
	if _, err := s.Repos.Job.GetByID(ctx, jobID); err != nil {
		return nil, storeErr("save_log", err, ErrJobNotFound)
	}
	l := &job.Log{JobID: jobID, Content: content}
	if err := s.Repos.Job.SaveLog(ctx, l); err != nil {
		return nil, storeErr("save_log", err, nil)
	}
	return l, nil
}

// SubmitJob stores a new job in the submitted state. A job linked to a
// project needs the project to be accepted and to hold a quota for the
// job's platform.
func (s *JobService) SubmitJob(ctx context.Context, input job.SubmitJobDTO) (transform.JobView, error) {
	if err := validateDTO(input); err != nil {
		return transform.JobView{}, err
	}
	if input.UserID == "" {
		return transform.JobView{}, errs.Validationf("user_id is required")
	}
	if err := validJSON("hardware_config", input.HardwareConfig); err != nil {
		return transform.JobView{}, err
	}
	if err := validJSON("provenance", input.Provenance); err != nil {
		return transform.JobView{}, err
	}

	j := &job.Job{
		Code:                input.Code,
		Command:             input.Command,
		CollabID:            input.CollabID,
		UserID:              input.UserID,
		Status:              job.StatusSubmitted,
		HardwarePlatform:    input.HardwarePlatform,
		HardwareConfig:      input.HardwareConfig,
		TimestampSubmission: s.clock.Now().UTC(),
		Provenance:          input.Provenance,
		ProjectID:           input.ProjectID,
	}
	for _, url := range input.InputData {
		j.InputData = append(j.InputData, job.DataItem{URL: url})
	}

	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if j.ProjectID != nil {
			p, err := tx.Project.GetByID(ctx, *j.ProjectID)
			if err != nil {
				return storeErr("submit_job", err, ErrProjectNotFound)
			}
			if p.Status() != project.StatusAccepted {
				return errs.Validationf("project %s is %s, jobs need an accepted project", p.ID, p.Status())
			}
			if _, err := tx.Quota.LockForPlatform(ctx, p.ID, j.HardwarePlatform); err != nil {
				return storeErr("submit_job", err, ErrQuotaNotFound)
			}
		}
		return storeErr("submit_job", tx.Job.Create(ctx, j), nil)
	})
	if err != nil {
		return transform.JobView{}, err
	}

	log.Info().Uint("job", j.ID).Str("collab", j.CollabID).Str("platform", j.HardwarePlatform).Msg("job submitted")
	return transform.Job(j, s.Units)
}

// UpdateJobStatus applies a status report from the execution subsystem.
// Entering a terminal status stamps the completion time and charges the
// reported usage to the project quota in the same transaction.
func (s *JobService) UpdateJobStatus(ctx context.Context, id uint, input job.StatusUpdateDTO) (transform.JobView, error) {
	if err := validateDTO(input); err != nil {
		return transform.JobView{}, err
	}
	if !input.Status.Valid() {
		return transform.JobView{}, errs.Validationf("unknown job status %q", input.Status)
	}
	if input.ResourceUsage != nil && !input.Status.IsTerminal() {
		return transform.JobView{}, errs.Validationf("resource_usage is only reported with a terminal status")
	}

	var j *job.Job
	var c *charge
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		var err error
		j, err = tx.Job.GetForUpdate(ctx, id)
		if err != nil {
			return storeErr("update_job_status", err, ErrJobNotFound)
		}
		if j.Status.IsTerminal() {
			return errs.Validationf("job %d is %s and can no longer change", j.ID, j.Status)
		}

		j.Status = input.Status
		if input.Status.IsTerminal() {
			now := s.clock.Now().UTC()
			j.TimestampCompletion = &now
			j.ResourceUsage = input.ResourceUsage
		}
		if err := tx.Job.Update(ctx, j); err != nil {
			return storeErr("update_job_status", err, nil)
		}

		items := make([]job.DataItem, 0, len(input.OutputData))
		for _, url := range input.OutputData {
			items = append(items, job.DataItem{URL: url})
		}
		if err := tx.Job.AppendOutputData(ctx, j, items); err != nil {
			return storeErr("update_job_status", err, nil)
		}

		c, err = s.quota.charge(ctx, tx, j)
		return err
	})
	if err != nil {
		return transform.JobView{}, err
	}
	c.record()

	log.Info().Uint("job", j.ID).Str("status", string(j.Status)).Msg("job status updated")
	return transform.Job(j, s.Units)
}

func validJSON(field string, s *string) error {
	if s == nil || *s == "" {
		return nil
	}
	if !json.Valid([]byte(*s)) {
		return errs.Validationf("%s is not valid JSON", field)
	}
	return nil
}
