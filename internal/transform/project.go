package transform

import (
	"github.com/google/uuid"
	"github.com/linskybing/simqueue/internal/domain/project"
	"github.com/linskybing/simqueue/internal/domain/quota"
)

// ProjectView is the public shape of a project. The storage identity column
// is exposed as id.
type ProjectView struct {
	ID             uuid.UUID      `json:"id"`
	Collab         string         `json:"collab"`
	Owner          string         `json:"owner"`
	Title          string         `json:"title"`
	Abstract       string         `json:"abstract"`
	Description    string         `json:"description"`
	Duration       int            `json:"duration"`
	StartDate      *string        `json:"start_date"`
	Accepted       bool           `json:"accepted"`
	SubmissionDate *string        `json:"submission_date"`
	DecisionDate   *string        `json:"decision_date"`
	Status         project.Status `json:"status"`
}

func Project(p *project.Project) ProjectView {
	return ProjectView{
		ID:             p.ID,
		Collab:         p.Collab,
		Owner:          p.Owner,
		Title:          p.Title,
		Abstract:       p.Abstract,
		Description:    p.Description,
		Duration:       p.Duration,
		StartDate:      project.FormatDate(p.StartDate),
		Accepted:       p.Accepted,
		SubmissionDate: project.FormatDate(p.SubmissionDate),
		DecisionDate:   project.FormatDate(p.DecisionDate),
		Status:         p.Status(),
	}
}

func Projects(ps []project.Project) []ProjectView {
	out := make([]ProjectView, len(ps))
	for i := range ps {
		out[i] = Project(&ps[i])
	}
	return out
}

type QuotaView struct {
	ID        uint      `json:"id"`
	Units     string    `json:"units"`
	Limit     float64   `json:"limit"`
	Usage     float64   `json:"usage"`
	Platform  string    `json:"platform"`
	ProjectID uuid.UUID `json:"project_id"`
}

func Quota(q *quota.Quota) QuotaView {
	return QuotaView{
		ID:        q.ID,
		Units:     q.Units,
		Limit:     q.Limit,
		Usage:     q.Usage,
		Platform:  q.Platform,
		ProjectID: q.ProjectID,
	}
}

func Quotas(qs []quota.Quota) []QuotaView {
	out := make([]QuotaView, len(qs))
	for i := range qs {
		out[i] = Quota(&qs[i])
	}
	return out
}
