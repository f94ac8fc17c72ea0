package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/simqueue/internal/domain/project"
	"github.com/linskybing/simqueue/internal/errs"
	"github.com/linskybing/simqueue/internal/metrics"
	"github.com/linskybing/simqueue/internal/repository"
	"github.com/linskybing/simqueue/internal/transform"
	"github.com/linskybing/simqueue/pkg/types"
	"github.com/rs/zerolog/log"
	"k8s.io/utils/clock"
)

type ProjectService struct {
	Repos *repository.Repos
	quota *QuotaService
	clock clock.PassiveClock
}

func NewProjectService(repos *repository.Repos, quota *QuotaService, clk clock.PassiveClock) *ProjectService {
	return &ProjectService{
		Repos: repos,
		quota: quota,
		clock: clk,
	}
}

func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (transform.ProjectView, error) {
	p, err := s.Repos.Project.GetByID(ctx, id)
	if err != nil {
		return transform.ProjectView{}, storeErr("get_project", err, ErrProjectNotFound)
	}
	return transform.Project(p), nil
}

func (s *ProjectService) QueryProjects(ctx context.Context, filter project.Filter, page types.Pagination) (views []transform.ProjectView, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("query_projects", start, err) }(time.Now())

	for _, st := range filter.Status {
		if !st.Valid() {
			return nil, errs.Validationf("unknown project status %q", st)
		}
	}
	if err := validatePage(page); err != nil {
		return nil, err
	}
	ps, err := s.Repos.Project.Query(ctx, filter, page)
	if err != nil {
		return nil, storeErr("query_projects", err, nil)
	}
	return transform.Projects(ps), nil
}

// CreateProject stores a new in_prep project, or an under_review one when the
// caller declares it submitted. The id is generated unless supplied.
func (s *ProjectService) CreateProject(ctx context.Context, input project.CreateProjectDTO) (transform.ProjectView, error) {
	if err := validateDTO(input); err != nil {
		return transform.ProjectView{}, err
	}
	if input.Owner == "" {
		return transform.ProjectView{}, errs.Validationf("owner is required")
	}

	p := &project.Project{
		ID:          uuid.New(),
		Collab:      input.Collab,
		Owner:       input.Owner,
		Title:       input.Title,
		Abstract:    input.Abstract,
		Description: input.Description,
		Duration:    0,
		Accepted:    false,
		CreatedAt:   s.clock.Now().UTC(),
	}
	if input.ID != nil && *input.ID != uuid.Nil {
		p.ID = *input.ID
	}
	if input.Submitted {
		p.SubmissionDate = project.DateOf(s.clock.Now())
	}

	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		_, err := tx.Project.GetByID(ctx, p.ID)
		switch {
		case err == nil:
			return errs.Validationf("project %s already exists", p.ID)
		case !isNotFound(err):
			return storeErr("create_project", err, nil)
		}
		if err := tx.Project.Create(ctx, p); err != nil {
			if isDuplicate(err) {
				return errs.Validationf("project %s already exists", p.ID)
			}
			return storeErr("create_project", err, nil)
		}
		return nil
	})
	if err != nil {
		return transform.ProjectView{}, err
	}

	log.Info().Str("project", p.ID.String()).Str("collab", p.Collab).Str("status", string(p.Status())).Msg("project created")
	return transform.Project(p), nil
}

// UpdateProject replaces every mutable field of the project.
func (s *ProjectService) UpdateProject(ctx context.Context, id uuid.UUID, input project.UpdateProjectDTO) (transform.ProjectView, error) {
	if err := validateDTO(input); err != nil {
		return transform.ProjectView{}, err
	}
	startDate, err := project.ParseDate(input.StartDate)
	if err != nil {
		return transform.ProjectView{}, err
	}
	submissionDate, err := project.ParseDate(input.SubmissionDate)
	if err != nil {
		return transform.ProjectView{}, err
	}
	decisionDate, err := project.ParseDate(input.DecisionDate)
	if err != nil {
		return transform.ProjectView{}, err
	}

	var p *project.Project
	err = s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		var err error
		p, err = tx.Project.GetByID(ctx, id)
		if err != nil {
			return storeErr("update_project", err, ErrProjectNotFound)
		}

		p.Collab = input.Collab
		p.Owner = input.Owner
		p.Title = input.Title
		p.Abstract = *input.Abstract
		p.Description = *input.Description
		p.Duration = *input.Duration
		p.Accepted = *input.Accepted
		p.StartDate = startDate
		p.SubmissionDate = submissionDate
		p.DecisionDate = decisionDate
		if err := p.Validate(); err != nil {
			return err
		}
		return storeErr("update_project", tx.Project.Update(ctx, p), nil)
	})
	if err != nil {
		return transform.ProjectView{}, err
	}
	return transform.Project(p), nil
}

// DeleteProject removes the project together with its quotas. Deleting an
// absent project is not an error.
func (s *ProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	var removed int64
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		var err error
		if removed, err = s.quota.deleteAll(ctx, tx, id); err != nil {
			return err
		}
		return storeErr("delete_project", tx.Project.Delete(ctx, id), nil)
	})
	if err != nil {
		return err
	}
	log.Info().Str("project", id.String()).Int64("quotas", removed).Msg("project deleted")
	return nil
}

func (s *ProjectService) SubmitProject(ctx context.Context, id uuid.UUID) (transform.ProjectView, error) {
	return s.transition(ctx, "submit_project", id, (*project.Project).Submit)
}

func (s *ProjectService) AcceptProject(ctx context.Context, id uuid.UUID) (transform.ProjectView, error) {
	return s.transition(ctx, "accept_project", id, (*project.Project).Accept)
}

func (s *ProjectService) RejectProject(ctx context.Context, id uuid.UUID) (transform.ProjectView, error) {
	return s.transition(ctx, "reject_project", id, (*project.Project).Reject)
}

func (s *ProjectService) transition(ctx context.Context, op string, id uuid.UUID, apply func(*project.Project, time.Time) error) (transform.ProjectView, error) {
	var p *project.Project
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		var err error
		p, err = tx.Project.GetByID(ctx, id)
		if err != nil {
			return storeErr(op, err, ErrProjectNotFound)
		}
		if err := apply(p, s.clock.Now()); err != nil {
			return err
		}
		return storeErr(op, tx.Project.Update(ctx, p), nil)
	})
	if err != nil {
		return transform.ProjectView{}, err
	}

	log.Info().Str("project", id.String()).Str("status", string(p.Status())).Msg("project status changed")
	return transform.Project(p), nil
}
