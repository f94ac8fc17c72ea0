package quota

import (
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/simqueue/internal/domain/project"
)

// Quota bounds the cumulative resource usage of a project on one platform.
// Platform and Units are fixed at creation.
type Quota struct {
	ID        uint      `gorm:"primaryKey;column:id"`
	Units     string    `gorm:"size:15;not null"`
	Limit     float64   `gorm:"column:limit;not null"`
	Usage     float64   `gorm:"column:usage;not null;default:0"`
	Platform  string    `gorm:"size:20;not null;uniqueIndex:idx_quota_project_platform,priority:2"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;column:project_id;uniqueIndex:idx_quota_project_platform,priority:1"`

	Project *project.Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the database table name
func (Quota) TableName() string {
	return "quotas_quota"
}

// Remaining returns the usage left before the limit, never below zero.
func (q *Quota) Remaining() float64 {
	if r := q.Limit - q.Usage; r > 0 {
		return r
	}
	return 0
}

// Exceeded reports whether usage is above the limit.
func (q *Quota) Exceeded() bool {
	return q.Usage > q.Limit
}

// UsagePercent returns the percentage of the limit consumed
func (q *Quota) UsagePercent() float64 {
	if q.Limit == 0 {
		return 0
	}
	return q.Usage / q.Limit * 100
}

// Charge records that a job's resource usage was added to a quota. A job is
// charged at most once.
type Charge struct {
	JobID     uint      `gorm:"primaryKey;autoIncrement:false;column:job_id"`
	QuotaID   uint      `gorm:"not null;column:quota_id;index"`
	Amount    float64   `gorm:"not null"`
	ChargedAt time.Time `gorm:"not null;column:charged_at"`
}

// TableName specifies the database table name
func (Charge) TableName() string {
	return "quotas_charge"
}
