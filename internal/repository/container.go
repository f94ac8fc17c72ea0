package repository

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/repos.go -package=mock github.com/linskybing/simqueue/internal/repository JobRepo,ProjectRepo,QuotaRepo

type Repos struct {
	Job     JobRepo
	Project ProjectRepo
	Quota   QuotaRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Job:     NewJobRepo(db),
		Project: NewProjectRepo(db),
		Quota:   NewQuotaRepo(db),
		db:      db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Job:     r.Job.WithTx(tx),
		Project: r.Project.WithTx(tx),
		Quota:   r.Quota.WithTx(tx),
		db:      tx,
	}
}

// ExecTx runs fn with repositories bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (r *Repos) ExecTx(ctx context.Context, fn func(*Repos) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}

// Ping checks that the store is reachable.
func (r *Repos) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
