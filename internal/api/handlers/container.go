package handlers

import (
	"github.com/linskybing/simqueue/internal/application"
	"github.com/linskybing/simqueue/internal/repository"
)

type Handlers struct {
	Job        *JobHandler
	Project    *ProjectHandler
	Quota      *QuotaHandler
	Statistics *StatisticsHandler
	Health     *HealthHandler
}

func New(svc *application.Services, repos *repository.Repos) *Handlers {
	return &Handlers{
		Job:        NewJobHandler(svc.Job),
		Project:    NewProjectHandler(svc.Project),
		Quota:      NewQuotaHandler(svc.Quota),
		Statistics: NewStatisticsHandler(svc.Statistics),
		Health:     NewHealthHandler(repos),
	}
}
