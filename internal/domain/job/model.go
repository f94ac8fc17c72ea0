package job

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the current state of a job as reported by the execution backend
type Status string

const (
	StatusSubmitted Status = "submitted" // Accepted, not yet queued
	StatusQueued    Status = "queued"    // Waiting on the platform
	StatusRunning   Status = "running"   // Currently executing
	StatusFinished  Status = "finished"  // Completed successfully
	StatusError     Status = "error"     // Execution failed
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusSubmitted, StatusQueued, StatusRunning, StatusFinished, StatusError:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition can occur from s.
func (s Status) IsTerminal() bool {
	return s == StatusFinished || s == StatusError
}

// DataItem is a file consumed or produced by a job.
type DataItem struct {
	ID  uint   `gorm:"primaryKey;column:id" json:"id"`
	URL string `gorm:"size:1000;column:url" json:"url"`
}

// TableName specifies the database table name
func (DataItem) TableName() string {
	return "simqueue_dataitem"
}

// Job is a simulation submitted to a hardware platform.
//
// TimestampCompletion is set iff Status is terminal and ResourceUsage is only
// present after completion. The usage unit is not stored; it is looked up from
// the platform table when the job is read.
type Job struct {
	ID                  uint       `gorm:"primaryKey;column:id"`
	Code                string     `gorm:"type:text;not null"`
	Command             string     `gorm:"size:500;not null"`
	CollabID            string     `gorm:"size:40;not null;column:collab_id;index"`
	UserID              string     `gorm:"size:36;not null;column:user_id;index"`
	Status              Status     `gorm:"size:15;not null;default:'submitted'"`
	HardwarePlatform    string     `gorm:"size:20;not null;column:hardware_platform"`
	HardwareConfig      *string    `gorm:"type:text;column:hardware_config"`
	TimestampSubmission time.Time  `gorm:"not null;column:timestamp_submission;index"`
	TimestampCompletion *time.Time `gorm:"column:timestamp_completion"`
	Provenance          *string    `gorm:"type:text"`
	ResourceUsage       *float64   `gorm:"column:resource_usage"`
	// ProjectID links the job to the project whose quota it draws on.
	ProjectID *uuid.UUID `gorm:"type:uuid;column:project_id;index"`

	InputData  []DataItem `gorm:"many2many:simqueue_job_input_data;joinForeignKey:job_id;joinReferences:dataitem_id"`
	OutputData []DataItem `gorm:"many2many:simqueue_job_output_data;joinForeignKey:job_id;joinReferences:dataitem_id"`
}

// TableName specifies the database table name
func (Job) TableName() string {
	return "simqueue_job"
}

// Comment is a note attached to a job.
type Comment struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id"`
	Content     string    `gorm:"type:text" json:"content"`
	CreatedTime time.Time `gorm:"not null;column:created_time" json:"created_time"`
	User        string    `gorm:"size:36;not null;column:user" json:"user"`
	JobID       uint      `gorm:"not null;column:job_id;index" json:"job_id"`
}

// TableName specifies the database table name
func (Comment) TableName() string {
	return "simqueue_comment"
}

// Log holds the execution output of a job, at most one per job.
type Log struct {
	JobID   uint   `gorm:"primaryKey;autoIncrement:false;column:job_id" json:"job_id"`
	Content string `gorm:"type:text;not null" json:"content"`
}

// TableName specifies the database table name
func (Log) TableName() string {
	return "simqueue_log"
}
