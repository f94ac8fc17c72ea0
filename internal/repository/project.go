package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/linskybing/simqueue/internal/domain/project"
	"github.com/linskybing/simqueue/pkg/types"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	project.Repository
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{
		db: db,
	}
}

func (r *DBProjectRepo) Create(ctx context.Context, p *project.Project) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(p).Error, "create project")
}

func (r *DBProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	var p project.Project
	if err := r.db.WithContext(ctx).First(&p, "context = ?", id).Error; err != nil {
		return nil, errors.Wrapf(err, "get project %s", id)
	}
	return &p, nil
}

func (r *DBProjectRepo) Query(ctx context.Context, filter project.Filter, page types.Pagination) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.WithContext(ctx).Model(&project.Project{}).Scopes(
		projectStatus(filter.Status),
		inValues("collab", filter.Collab),
		inValues("owner", filter.Owner),
		paginate(page),
	).Order("created_at").Order("context").Find(&projects).Error
	if err != nil {
		return nil, errors.Wrap(err, "query projects")
	}
	return projects, nil
}

func (r *DBProjectRepo) Update(ctx context.Context, p *project.Project) error {
	return errors.Wrapf(r.db.WithContext(ctx).Save(p).Error, "update project %s", p.ID)
}

func (r *DBProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Where("context = ?", id).Delete(&project.Project{}).Error
	return errors.Wrapf(err, "delete project %s", id)
}

func (r *DBProjectRepo) CountByStatus(ctx context.Context, filter project.Filter) (map[project.Status]int64, error) {
	statuses := filter.Status
	if len(statuses) == 0 {
		statuses = project.Statuses
	}
	counts := make(map[project.Status]int64, len(statuses))
	for _, s := range statuses {
		var n int64
		err := r.db.WithContext(ctx).Model(&project.Project{}).Scopes(
			projectStatus([]project.Status{s}),
			inValues("collab", filter.Collab),
			inValues("owner", filter.Owner),
		).Count(&n).Error
		if err != nil {
			return nil, errors.Wrapf(err, "count %s projects", s)
		}
		counts[s] = n
	}
	return counts, nil
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{
		db: tx,
	}
}
