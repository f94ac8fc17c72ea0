package job

import (
	"context"

	"github.com/linskybing/simqueue/pkg/types"
)

// Repository defines data access interface for jobs and their child records
type Repository interface {
	// Query returns the page of jobs matching filter with input and output
	// data hydrated. fields restricts the selected columns when non-empty.
	Query(ctx context.Context, filter Filter, fields []string, page types.Pagination) ([]Job, error)
	GetByID(ctx context.Context, id uint) (*Job, error)
	// GetForUpdate reads the job and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id uint) (*Job, error)
	Create(ctx context.Context, j *Job) error
	// Update saves the scalar columns of j.
	Update(ctx context.Context, j *Job) error
	AppendOutputData(ctx context.Context, j *Job, items []DataItem) error
	FindComments(ctx context.Context, jobID uint) ([]Comment, error)
	CreateComment(ctx context.Context, c *Comment) error
	FindLog(ctx context.Context, jobID uint) (*Log, error)
	SaveLog(ctx context.Context, l *Log) error
	// CountByPlatform counts the jobs matching filter per platform and status.
	CountByPlatform(ctx context.Context, filter Filter) ([]PlatformStatusCount, error)
	// ActiveUsers counts the distinct submitters matching filter per platform.
	ActiveUsers(ctx context.Context, filter Filter) ([]PlatformUserCount, error)
}
