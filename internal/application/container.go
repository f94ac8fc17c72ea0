package application

import (
	"github.com/linskybing/simqueue/internal/repository"
	"github.com/linskybing/simqueue/internal/transform"
	"k8s.io/utils/clock"
)

type Services struct {
	Job        *JobService
	Project    *ProjectService
	Quota      *QuotaService
	Statistics *StatisticsService
}

func New(repos *repository.Repos, units transform.UnitLookup, clk clock.PassiveClock) *Services {
	quota := NewQuotaService(repos, clk)
	return &Services{
		Job:        NewJobService(repos, units, quota, clk),
		Project:    NewProjectService(repos, quota, clk),
		Quota:      quota,
		Statistics: NewStatisticsService(repos),
	}
}
