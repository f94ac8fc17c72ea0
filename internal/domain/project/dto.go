package project

import "github.com/google/uuid"

type CreateProjectDTO struct {
	ID          *uuid.UUID `json:"id,omitempty"`
	Collab      string     `json:"collab" binding:"required,max=40"`
	Owner       string     `json:"owner" binding:"max=36"`
	Title       string     `json:"title" binding:"required,max=200"`
	Abstract    string     `json:"abstract" binding:"required"`
	Description string     `json:"description"`
	// Submitted creates the project directly in under_review.
	Submitted bool `json:"submitted"`
}

// UpdateProjectDTO replaces every mutable field; callers resend the full record.
type UpdateProjectDTO struct {
	Collab         string  `json:"collab" binding:"required,max=40"`
	Owner          string  `json:"owner" binding:"required,max=36"`
	Title          string  `json:"title" binding:"required,max=200"`
	Abstract       *string `json:"abstract" binding:"required"`
	Description    *string `json:"description" binding:"required"`
	Duration       *int    `json:"duration" binding:"required,gte=0"`
	Accepted       *bool   `json:"accepted" binding:"required"`
	StartDate      *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	SubmissionDate *string `json:"submission_date" binding:"omitempty,datetime=2006-01-02"`
	DecisionDate   *string `json:"decision_date" binding:"omitempty,datetime=2006-01-02"`
}

// Filter selects projects. Value sets follow the same singleton-vs-set rule
// as job filters.
type Filter struct {
	Status []Status
	Collab []string
	Owner  []string
}
