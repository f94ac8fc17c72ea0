package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/simqueue/internal/domain/job"
	"github.com/linskybing/simqueue/internal/domain/quota"
	"github.com/linskybing/simqueue/internal/errs"
	"github.com/linskybing/simqueue/internal/metrics"
	"github.com/linskybing/simqueue/internal/repository"
	"github.com/linskybing/simqueue/internal/transform"
	"github.com/linskybing/simqueue/pkg/types"
	"github.com/rs/zerolog/log"
	"k8s.io/utils/clock"
)

type QuotaService struct {
	Repos *repository.Repos
	clock clock.PassiveClock
}

func NewQuotaService(repos *repository.Repos, clk clock.PassiveClock) *QuotaService {
	return &QuotaService{
		Repos: repos,
		clock: clk,
	}
}

// QueryQuotas lists the quotas of a project. The project id is required.
func (s *QuotaService) QueryQuotas(ctx context.Context, projectID uuid.UUID, page types.Pagination) (views []transform.QuotaView, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("query_quotas", start, err) }(time.Now())

	if projectID == uuid.Nil {
		return nil, errs.Validationf("project_id is required")
	}
	if err := validatePage(page); err != nil {
		return nil, err
	}
	qs, err := s.Repos.Quota.Query(ctx, projectID, page)
	if err != nil {
		return nil, storeErr("query_quotas", err, nil)
	}
	return transform.Quotas(qs), nil
}

func (s *QuotaService) GetQuota(ctx context.Context, quotaID uint, projectID uuid.UUID) (transform.QuotaView, error) {
	q, err := s.Repos.Quota.Get(ctx, quotaID, projectID)
	if err != nil {
		return transform.QuotaView{}, storeErr("get_quota", err, ErrQuotaNotFound)
	}
	return transform.Quota(q), nil
}

// CreateQuota adds a quota with zero usage. A project holds at most one quota
// per platform.
func (s *QuotaService) CreateQuota(ctx context.Context, projectID uuid.UUID, input quota.CreateQuotaDTO) (transform.QuotaView, error) {
	if err := validateDTO(input); err != nil {
		return transform.QuotaView{}, err
	}

	q := &quota.Quota{
		Units:     input.Units,
		Limit:     *input.Limit,
		Usage:     0,
		Platform:  input.Platform,
		ProjectID: projectID,
	}
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if _, err := tx.Project.GetByID(ctx, projectID); err != nil {
			return storeErr("create_quota", err, ErrProjectNotFound)
		}
		_, err := tx.Quota.LockForPlatform(ctx, projectID, input.Platform)
		switch {
		case err == nil:
			return errs.Validationf("project %s already has a %s quota", projectID, input.Platform)
		case !isNotFound(err):
			return storeErr("create_quota", err, nil)
		}
		if err := tx.Quota.Create(ctx, q); err != nil {
			if isDuplicate(err) {
				return errs.Validationf("project %s already has a %s quota", projectID, input.Platform)
			}
			return storeErr("create_quota", err, nil)
		}
		return nil
	})
	if err != nil {
		return transform.QuotaView{}, err
	}

	log.Info().Str("project", projectID.String()).Str("platform", q.Platform).Float64("limit", q.Limit).Msg("quota created")
	return transform.Quota(q), nil
}

// UpdateQuota replaces limit and usage. Platform and units never change.
func (s *QuotaService) UpdateQuota(ctx context.Context, projectID uuid.UUID, quotaID uint, input quota.UpdateQuotaDTO) (transform.QuotaView, error) {
	if err := validateDTO(input); err != nil {
		return transform.QuotaView{}, err
	}

	var q *quota.Quota
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		var err error
		q, err = tx.Quota.GetForUpdate(ctx, quotaID, projectID)
		if err != nil {
			return storeErr("update_quota", err, ErrQuotaNotFound)
		}
		q.Limit = *input.Limit
		q.Usage = *input.Usage
		return storeErr("update_quota", tx.Quota.Update(ctx, q), nil)
	})
	if err != nil {
		return transform.QuotaView{}, err
	}
	return transform.Quota(q), nil
}

// DeleteQuota removes the quota. Deleting an absent quota is not an error.
func (s *QuotaService) DeleteQuota(ctx context.Context, quotaID uint, projectID uuid.UUID) error {
	return storeErr("delete_quota", s.Repos.Quota.Delete(ctx, quotaID, projectID), nil)
}

// DeleteAllQuotasForProject removes every quota of the project at once.
func (s *QuotaService) DeleteAllQuotasForProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	var n int64
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		var err error
		n, err = s.deleteAll(ctx, tx, projectID)
		return err
	})
	return n, err
}

func (s *QuotaService) deleteAll(ctx context.Context, tx *repository.Repos, projectID uuid.UUID) (int64, error) {
	n, err := tx.Quota.DeleteByProject(ctx, projectID)
	if err != nil {
		return 0, storeErr("delete_quotas", err, nil)
	}
	return n, nil
}

// ChargeJob adds the resource usage of a completed job to its project quota.
// Charging the same job again has no effect. When the project holds no quota
// for the job's platform the usage is left uncharged.
func (s *QuotaService) ChargeJob(ctx context.Context, j *job.Job) error {
	var c *charge
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		var err error
		c, err = s.charge(ctx, tx, j)
		return err
	})
	if err != nil {
		return err
	}
	c.record()
	return nil
}

type charge struct {
	job      uint
	platform string
	amount   float64
	// quota is nil when the project holds no quota for the platform.
	quota *quota.Quota
}

func (c *charge) record() {
	if c == nil {
		return
	}
	if c.quota == nil {
		metrics.RecordUncharged(c.platform, c.amount)
		log.Warn().
			Uint("job", c.job).
			Str("platform", c.platform).
			Float64("usage", c.amount).
			Msg("no quota for platform, usage not charged")
		return
	}
	metrics.RecordCharge(c.quota.Platform, c.amount, c.quota.Exceeded())
	if c.quota.Exceeded() {
		log.Warn().
			Str("project", c.quota.ProjectID.String()).
			Str("platform", c.quota.Platform).
			Float64("usage", c.quota.Usage).
			Float64("limit", c.quota.Limit).
			Msg("quota exceeded")
	}
}

// charge runs inside tx. It returns nil when nothing was charged. A missing
// quota leaves the usage uncharged without failing the transaction.
func (s *QuotaService) charge(ctx context.Context, tx *repository.Repos, j *job.Job) (*charge, error) {
	if j.ProjectID == nil || j.ResourceUsage == nil {
		return nil, nil
	}
	if !j.Status.IsTerminal() {
		return nil, errs.Validationf("job %d is %s; only completed jobs are charged", j.ID, j.Status)
	}

	_, err := tx.Quota.FindCharge(ctx, j.ID)
	switch {
	case err == nil:
		log.Debug().Uint("job", j.ID).Msg("job already charged")
		return nil, nil
	case !isNotFound(err):
		return nil, storeErr("charge_job", err, nil)
	}

	amount := *j.ResourceUsage
	q, err := tx.Quota.LockForPlatform(ctx, *j.ProjectID, j.HardwarePlatform)
	switch {
	case isNotFound(err):
		return &charge{job: j.ID, platform: j.HardwarePlatform, amount: amount}, nil
	case err != nil:
		return nil, storeErr("charge_job", err, nil)
	}
	q.Usage += amount
	if err := tx.Quota.Update(ctx, q); err != nil {
		return nil, storeErr("charge_job", err, nil)
	}
	err = tx.Quota.CreateCharge(ctx, &quota.Charge{
		JobID:     j.ID,
		QuotaID:   q.ID,
		Amount:    amount,
		ChargedAt: s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, storeErr("charge_job", err, nil)
	}
	return &charge{job: j.ID, platform: q.Platform, amount: amount, quota: q}, nil
}
