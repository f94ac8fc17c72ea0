package quota

import (
	"context"

	"github.com/google/uuid"
	"github.com/linskybing/simqueue/pkg/types"
)

// Repository defines data access interface for quotas. Every lookup is keyed
// by the owning project so one project cannot reach another's quotas.
type Repository interface {
	Query(ctx context.Context, projectID uuid.UUID, page types.Pagination) ([]Quota, error)
	Get(ctx context.Context, id uint, projectID uuid.UUID) (*Quota, error)
	// GetForUpdate reads the quota and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id uint, projectID uuid.UUID) (*Quota, error)
	// LockForPlatform reads and locks the project's quota for platform.
	LockForPlatform(ctx context.Context, projectID uuid.UUID, platform string) (*Quota, error)
	Create(ctx context.Context, q *Quota) error
	Update(ctx context.Context, q *Quota) error
	Delete(ctx context.Context, id uint, projectID uuid.UUID) error
	DeleteByProject(ctx context.Context, projectID uuid.UUID) (int64, error)
	FindCharge(ctx context.Context, jobID uint) (*Charge, error)
	CreateCharge(ctx context.Context, c *Charge) error
	UsageByPlatform(ctx context.Context) ([]PlatformUsage, error)
}
