package repository

import (
	"context"

	"github.com/linskybing/simqueue/internal/domain/job"
	"github.com/linskybing/simqueue/pkg/types"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JobRepo matches the domain job repository contract.
type JobRepo interface {
	job.Repository
	WithTx(tx *gorm.DB) JobRepo
}

type DBJobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) *DBJobRepo {
	return &DBJobRepo{
		db: db,
	}
}

func (r *DBJobRepo) Query(ctx context.Context, filter job.Filter, fields []string, page types.Pagination) ([]job.Job, error) {
	q := r.db.WithContext(ctx).Model(&job.Job{}).
		Scopes(jobFilter(filter)...).
		Scopes(orderByID, paginate(page))
	if len(fields) > 0 {
		q = q.Select(fields)
	}

	var jobs []job.Job
	err := q.Preload("InputData", orderByID).
		Preload("OutputData", orderByID).
		Find(&jobs).Error
	if err != nil {
		return nil, errors.Wrap(err, "query jobs")
	}
	return jobs, nil
}

func (r *DBJobRepo) GetByID(ctx context.Context, id uint) (*job.Job, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *DBJobRepo) GetForUpdate(ctx context.Context, id uint) (*job.Job, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *DBJobRepo) get(db *gorm.DB, id uint) (*job.Job, error) {
	var j job.Job
	err := db.
		Preload("InputData", orderByID).
		Preload("OutputData", orderByID).
		First(&j, id).Error
	if err != nil {
		return nil, errors.Wrapf(err, "get job %d", id)
	}
	return &j, nil
}

func (r *DBJobRepo) Create(ctx context.Context, j *job.Job) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(j).Error, "create job")
}

func (r *DBJobRepo) Update(ctx context.Context, j *job.Job) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(j).Error
	return errors.Wrapf(err, "update job %d", j.ID)
}

func (r *DBJobRepo) AppendOutputData(ctx context.Context, j *job.Job, items []job.DataItem) error {
	if len(items) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Model(j).Association("OutputData").Append(items)
	return errors.Wrapf(err, "attach output data to job %d", j.ID)
}

func (r *DBJobRepo) FindComments(ctx context.Context, jobID uint) ([]job.Comment, error) {
	var comments []job.Comment
	err := r.db.WithContext(ctx).Where("job_id = ?", jobID).Order("id").Find(&comments).Error
	if err != nil {
		return nil, errors.Wrapf(err, "find comments of job %d", jobID)
	}
	return comments, nil
}

func (r *DBJobRepo) CreateComment(ctx context.Context, c *job.Comment) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(c).Error, "create comment")
}

func (r *DBJobRepo) FindLog(ctx context.Context, jobID uint) (*job.Log, error) {
	var l job.Log
	if err := r.db.WithContext(ctx).First(&l, "job_id = ?", jobID).Error; err != nil {
		return nil, errors.Wrapf(err, "find log of job %d", jobID)
	}
	return &l, nil
}

func (r *DBJobRepo) SaveLog(ctx context.Context, l *job.Log) error {
	return errors.Wrapf(r.db.WithContext(ctx).Save(l).Error, "save log of job %d", l.JobID)
}

func (r *DBJobRepo) CountByPlatform(ctx context.Context, filter job.Filter) ([]job.PlatformStatusCount, error) {
	var rows []job.PlatformStatusCount
	err := r.db.WithContext(ctx).Model(&job.Job{}).
		Scopes(jobFilter(filter)...).
		Select("hardware_platform AS platform, status, COUNT(*) AS jobs").
		Group("hardware_platform").Group("status").
		Order("hardware_platform").Order("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "count jobs")
	}
	return rows, nil
}

func (r *DBJobRepo) ActiveUsers(ctx context.Context, filter job.Filter) ([]job.PlatformUserCount, error) {
	var rows []job.PlatformUserCount
	err := r.db.WithContext(ctx).Model(&job.Job{}).
		Scopes(jobFilter(filter)...).
		Select("hardware_platform AS platform, COUNT(DISTINCT user_id) AS users").
		Group("hardware_platform").
		Order("hardware_platform").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "count active users")
	}
	return rows, nil
}

func (r *DBJobRepo) WithTx(tx *gorm.DB) JobRepo {
	if tx == nil {
		return r
	}
	return &DBJobRepo{
		db: tx,
	}
}
