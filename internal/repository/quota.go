package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/linskybing/simqueue/internal/domain/quota"
	"github.com/linskybing/simqueue/pkg/types"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuotaRepo interface {
	quota.Repository
	WithTx(tx *gorm.DB) QuotaRepo
}

type DBQuotaRepo struct {
	db *gorm.DB
}

func NewQuotaRepo(db *gorm.DB) *DBQuotaRepo {
	return &DBQuotaRepo{
		db: db,
	}
}

func (r *DBQuotaRepo) Query(ctx context.Context, projectID uuid.UUID, page types.Pagination) ([]quota.Quota, error) {
	var quotas []quota.Quota
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Scopes(orderByID, paginate(page)).
		Find(&quotas).Error
	if err != nil {
		return nil, errors.Wrapf(err, "query quotas of project %s", projectID)
	}
	return quotas, nil
}

func (r *DBQuotaRepo) Get(ctx context.Context, id uint, projectID uuid.UUID) (*quota.Quota, error) {
	return r.get(r.db.WithContext(ctx), id, projectID)
}

func (r *DBQuotaRepo) GetForUpdate(ctx context.Context, id uint, projectID uuid.UUID) (*quota.Quota, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id, projectID)
}

func (r *DBQuotaRepo) get(db *gorm.DB, id uint, projectID uuid.UUID) (*quota.Quota, error) {
	var q quota.Quota
	if err := db.Where("id = ? AND project_id = ?", id, projectID).First(&q).Error; err != nil {
		return nil, errors.Wrapf(err, "get quota %d of project %s", id, projectID)
	}
	return &q, nil
}

func (r *DBQuotaRepo) LockForPlatform(ctx context.Context, projectID uuid.UUID, platform string) (*quota.Quota, error) {
	var q quota.Quota
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("project_id = ? AND platform = ?", projectID, platform).
		Order("id").
		First(&q).Error
	if err != nil {
		return nil, errors.Wrapf(err, "lock %s quota of project %s", platform, projectID)
	}
	return &q, nil
}

func (r *DBQuotaRepo) Create(ctx context.Context, q *quota.Quota) error {
	return errors.Wrap(r.db.WithContext(ctx).Omit(clause.Associations).Create(q).Error, "create quota")
}

func (r *DBQuotaRepo) Update(ctx context.Context, q *quota.Quota) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(q).Error
	return errors.Wrapf(err, "update quota %d", q.ID)
}

func (r *DBQuotaRepo) Delete(ctx context.Context, id uint, projectID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", id, projectID).
		Delete(&quota.Quota{}).Error
	return errors.Wrapf(err, "delete quota %d", id)
}

// DeleteByProject removes every quota of the project in one statement and
// returns the number of rows deleted.
func (r *DBQuotaRepo) DeleteByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&quota.Quota{})
	if res.Error != nil {
		return 0, errors.Wrapf(res.Error, "delete quotas of project %s", projectID)
	}
	return res.RowsAffected, nil
}

func (r *DBQuotaRepo) FindCharge(ctx context.Context, jobID uint) (*quota.Charge, error) {
	var c quota.Charge
	if err := r.db.WithContext(ctx).First(&c, "job_id = ?", jobID).Error; err != nil {
		return nil, errors.Wrapf(err, "find charge of job %d", jobID)
	}
	return &c, nil
}

func (r *DBQuotaRepo) CreateCharge(ctx context.Context, c *quota.Charge) error {
	return errors.Wrapf(r.db.WithContext(ctx).Create(c).Error, "charge job %d", c.JobID)
}

func (r *DBQuotaRepo) UsageByPlatform(ctx context.Context) ([]quota.PlatformUsage, error) {
	var rows []quota.PlatformUsage
	err := r.db.WithContext(ctx).Model(&quota.Quota{}).
		Select("platform, units, COUNT(*) AS quotas, SUM(?) AS total_limit, SUM(?) AS total_usage",
			clause.Column{Name: "limit"}, clause.Column{Name: "usage"}).
		Group("platform").Group("units").
		Order("platform").Order("units").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "sum quota usage")
	}
	return rows, nil
}

func (r *DBQuotaRepo) WithTx(tx *gorm.DB) QuotaRepo {
	if tx == nil {
		return r
	}
	return &DBQuotaRepo{
		db: tx,
	}
}
