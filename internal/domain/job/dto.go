package job

import "github.com/google/uuid"

// SubmitJobDTO is the payload accepted when a job is submitted.
type SubmitJobDTO struct {
	Code             string     `json:"code" binding:"required"`
	Command          string     `json:"command" binding:"max=500"`
	CollabID         string     `json:"collab_id" binding:"required,max=40"`
	UserID           string     `json:"user_id" binding:"max=36"`
	HardwarePlatform string     `json:"hardware_platform" binding:"required,max=20"`
	HardwareConfig   *string    `json:"hardware_config,omitempty"`
	Provenance       *string    `json:"provenance,omitempty"`
	ProjectID        *uuid.UUID `json:"project_id,omitempty"`
	InputData        []string   `json:"input_data,omitempty" binding:"dive,url,max=1000"`
}

// StatusUpdateDTO is reported by the execution subsystem as a job progresses.
type StatusUpdateDTO struct {
	Status        Status   `json:"status" binding:"required"`
	ResourceUsage *float64 `json:"resource_usage,omitempty" binding:"omitempty,gte=0"`
	OutputData    []string `json:"output_data,omitempty" binding:"dive,url,max=1000"`
}

// CommentDTO is the payload for a new comment.
type CommentDTO struct {
	Content string `json:"content" binding:"required"`
}
