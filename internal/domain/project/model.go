package project

import (
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/simqueue/internal/errs"
	"gorm.io/datatypes"
)

// Status is the review state of a project. It is derived from the stored
// dates and the accepted flag and never persisted.
type Status string

const (
	StatusInPrep      Status = "in_prep"      // Not yet submitted
	StatusUnderReview Status = "under_review" // Submitted, no decision
	StatusRejected    Status = "rejected"     // Decided, not accepted
	StatusAccepted    Status = "accepted"     // Accepted
)

// Statuses lists every derived status.
var Statuses = []Status{StatusInPrep, StatusUnderReview, StatusRejected, StatusAccepted}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Project is a resource allocation request. The identity column is named
// context in storage.
type Project struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;column:context"`
	Collab         string          `gorm:"size:40;not null;index"`
	Owner          string          `gorm:"size:36;not null;index"`
	Title          string          `gorm:"size:200;not null"`
	Abstract       string          `gorm:"type:text;not null"`
	Description    string          `gorm:"type:text;not null"`
	Duration       int             `gorm:"default:0"` // in days
	StartDate      *datatypes.Date `gorm:"column:start_date"`
	Accepted       bool            `gorm:"not null;default:false"`
	SubmissionDate *datatypes.Date `gorm:"column:submission_date"`
	DecisionDate   *datatypes.Date `gorm:"column:decision_date"`
	CreatedAt      time.Time       `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP;index"`
}

// TableName specifies the database table name
func (Project) TableName() string {
	return "quotas_project"
}

// Status derives the review state. Exactly one status holds for every
// combination of fields.
func (p *Project) Status() Status {
	switch {
	case p.Accepted:
		return StatusAccepted
	case p.DecisionDate != nil:
		return StatusRejected
	case p.SubmissionDate != nil:
		return StatusUnderReview
	default:
		return StatusInPrep
	}
}

// Validate checks the invariants between the stored fields.
func (p *Project) Validate() error {
	if p.Duration < 0 {
		return errs.Validationf("duration must not be negative")
	}
	if p.DecisionDate != nil && p.SubmissionDate == nil {
		return errs.Validationf("decision_date requires submission_date")
	}
	if p.StartDate != nil && !p.Accepted {
		return errs.Validationf("start_date is only set on accepted projects")
	}
	return nil
}

// Submit moves an in_prep project to under_review.
func (p *Project) Submit(today time.Time) error {
	if s := p.Status(); s != StatusInPrep {
		return errs.Validationf("cannot submit a project in status %s", s)
	}
	p.SubmissionDate = DateOf(today)
	return nil
}

// Accept records a positive decision and starts the project.
func (p *Project) Accept(today time.Time) error {
	if s := p.Status(); s != StatusUnderReview {
		return errs.Validationf("cannot accept a project in status %s", s)
	}
	p.Accepted = true
	p.DecisionDate = DateOf(today)
	p.StartDate = DateOf(today)
	return nil
}

// Reject records a negative decision.
func (p *Project) Reject(today time.Time) error {
	if s := p.Status(); s != StatusUnderReview {
		return errs.Validationf("cannot reject a project in status %s", s)
	}
	p.DecisionDate = DateOf(today)
	return nil
}

// DateOf truncates t to its UTC calendar date.
func DateOf(t time.Time) *datatypes.Date {
	t = t.UTC()
	d := datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
	return &d
}

// FormatDate renders d as YYYY-MM-DD, or nil when d is nil.
func FormatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).UTC().Format(DateLayout)
	return &s
}

// DateLayout is the wire format of project dates.
const DateLayout = "2006-01-02"

// ParseDate parses an optional YYYY-MM-DD string.
func ParseDate(s *string) (*datatypes.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return nil, errs.Validationf("invalid date %q", *s)
	}
	return DateOf(t), nil
}
