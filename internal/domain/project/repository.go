package project

import (
	"context"

	"github.com/google/uuid"
	"github.com/linskybing/simqueue/pkg/types"
)

// Repository defines data access interface for projects
type Repository interface {
	Create(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*Project, error)
	Query(ctx context.Context, filter Filter, page types.Pagination) ([]Project, error)
	Update(ctx context.Context, p *Project) error
	// Delete removes the project row. A missing row is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
	// CountByStatus counts the projects matching filter per derived status.
	// Every requested status is present in the result, all of them when
	// filter.Status is empty.
	CountByStatus(ctx context.Context, filter Filter) (map[Status]int64, error)
}
