package transform

import (
	"slices"
	"strings"

	"github.com/linskybing/simqueue/internal/domain/job"
	"github.com/linskybing/simqueue/internal/domain/project"
	"github.com/linskybing/simqueue/internal/domain/quota"
)

type QueueLengthView struct {
	Platform  string `json:"platform"`
	Submitted int64  `json:"submitted"`
	Queued    int64  `json:"queued"`
	Running   int64  `json:"running"`
}

// QueueLength folds per-status counts into one row per platform, ordered by
// platform. Every name in platforms gets a row even without jobs.
func QueueLength(counts []job.PlatformStatusCount, platforms []string) []QueueLengthView {
	byPlatform := make(map[string]*QueueLengthView)
	row := func(platform string) *QueueLengthView {
		v, ok := byPlatform[platform]
		if !ok {
			v = &QueueLengthView{Platform: platform}
			byPlatform[platform] = v
		}
		return v
	}
	for _, p := range platforms {
		row(p)
	}
	for _, c := range counts {
		v := row(c.Platform)
		switch c.Status {
		case job.StatusSubmitted:
			v.Submitted += c.Jobs
		case job.StatusQueued:
			v.Queued += c.Jobs
		case job.StatusRunning:
			v.Running += c.Jobs
		}
	}

	out := make([]QueueLengthView, 0, len(byPlatform))
	for _, v := range byPlatform {
		out = append(out, *v)
	}
	slices.SortFunc(out, func(a, b QueueLengthView) int {
		return strings.Compare(a.Platform, b.Platform)
	})
	return out
}

type JobCountView struct {
	Platform string     `json:"platform"`
	Status   job.Status `json:"status"`
	Jobs     int64      `json:"jobs"`
}

func JobCounts(counts []job.PlatformStatusCount) []JobCountView {
	out := make([]JobCountView, len(counts))
	for i, c := range counts {
		out[i] = JobCountView{Platform: c.Platform, Status: c.Status, Jobs: c.Jobs}
	}
	return out
}

type ActiveUsersView struct {
	Platform string `json:"platform"`
	Users    int64  `json:"users"`
}

func ActiveUsers(counts []job.PlatformUserCount) []ActiveUsersView {
	out := make([]ActiveUsersView, len(counts))
	for i, c := range counts {
		out[i] = ActiveUsersView{Platform: c.Platform, Users: c.Users}
	}
	return out
}

type ProjectCountView struct {
	Status   project.Status `json:"status"`
	Projects int64          `json:"projects"`
}

// ProjectCounts lists the counts in lifecycle order.
func ProjectCounts(counts map[project.Status]int64) []ProjectCountView {
	out := make([]ProjectCountView, 0, len(counts))
	for _, st := range project.Statuses {
		if n, ok := counts[st]; ok {
			out = append(out, ProjectCountView{Status: st, Projects: n})
		}
	}
	return out
}

type QuotaUsageView struct {
	Platform     string  `json:"platform"`
	Units        string  `json:"units"`
	Quotas       int64   `json:"quotas"`
	Limit        float64 `json:"limit"`
	Usage        float64 `json:"usage"`
	Remaining    float64 `json:"remaining"`
	UsagePercent float64 `json:"usage_percent"`
	Exceeded     bool    `json:"exceeded"`
}

func QuotaUsage(usage []quota.PlatformUsage) []QuotaUsageView {
	out := make([]QuotaUsageView, len(usage))
	for i, u := range usage {
		q := u.Quota()
		out[i] = QuotaUsageView{
			Platform:     u.Platform,
			Units:        u.Units,
			Quotas:       u.Quotas,
			Limit:        q.Limit,
			Usage:        q.Usage,
			Remaining:    q.Remaining(),
			UsagePercent: q.UsagePercent(),
			Exceeded:     q.Exceeded(),
		}
	}
	return out
}
