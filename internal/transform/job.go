package transform

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/simqueue/internal/domain/job"
	"github.com/linskybing/simqueue/internal/errs"
)

// UnitLookup resolves the resource usage unit of a hardware platform.
type UnitLookup interface {
	For(platform string) string
}

// ResourceUsage is a usage value tagged with its unit.
type ResourceUsage struct {
	Value float64 `json:"value"`
	Units string  `json:"units"`
}

// JobView is the public shape of a job.
type JobView struct {
	ID                  uint           `json:"id"`
	Code                string         `json:"code"`
	Command             string         `json:"command"`
	CollabID            string         `json:"collab_id"`
	UserID              string         `json:"user_id"`
	Status              job.Status     `json:"status"`
	HardwarePlatform    string         `json:"hardware_platform"`
	HardwareConfig      any            `json:"hardware_config"`
	TimestampSubmission time.Time      `json:"timestamp_submission"`
	TimestampCompletion *time.Time     `json:"timestamp_completion"`
	Provenance          any            `json:"provenance"`
	ResourceUsage       *ResourceUsage `json:"resource_usage"`
	ProjectID           *uuid.UUID     `json:"project_id"`
	InputData           []job.DataItem `json:"input_data"`
	OutputData          []job.DataItem `json:"output_data"`
}

// Job maps a stored job to its public shape. Serialized JSON columns are
// decoded and resource usage is tagged with the platform unit.
func Job(j *job.Job, units UnitLookup) (JobView, error) {
	config, err := decodeJSON(j.HardwareConfig)
	if err != nil {
		return JobView{}, errs.Parsef("hardware_config of job %d: %v", j.ID, err)
	}
	provenance, err := decodeJSON(j.Provenance)
	if err != nil {
		return JobView{}, errs.Parsef("provenance of job %d: %v", j.ID, err)
	}

	v := JobView{
		ID:                  j.ID,
		Code:                j.Code,
		Command:             j.Command,
		CollabID:            j.CollabID,
		UserID:              j.UserID,
		Status:              j.Status,
		HardwarePlatform:    j.HardwarePlatform,
		HardwareConfig:      config,
		TimestampSubmission: j.TimestampSubmission.UTC(),
		Provenance:          provenance,
		ProjectID:           j.ProjectID,
		InputData:           nonNil(j.InputData),
		OutputData:          nonNil(j.OutputData),
	}
	if j.TimestampCompletion != nil {
		t := j.TimestampCompletion.UTC()
		v.TimestampCompletion = &t
	}
	if j.ResourceUsage != nil {
		v.ResourceUsage = &ResourceUsage{
			Value: *j.ResourceUsage,
			Units: units.For(j.HardwarePlatform),
		}
	}
	return v, nil
}

// Jobs maps every job, stopping at the first malformed record.
func Jobs(jobs []job.Job, units UnitLookup) ([]JobView, error) {
	out := make([]JobView, 0, len(jobs))
	for i := range jobs {
		v, err := Job(&jobs[i], units)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Select keeps only the named columns. id and the data item lists are
// always present.
func (v JobView) Select(fields []string) map[string]any {
	out := map[string]any{
		"id":          v.ID,
		"input_data":  v.InputData,
		"output_data": v.OutputData,
	}
	for _, f := range fields {
		switch f {
		case "code":
			out[f] = v.Code
		case "command":
			out[f] = v.Command
		case "collab_id":
			out[f] = v.CollabID
		case "user_id":
			out[f] = v.UserID
		case "status":
			out[f] = v.Status
		case "hardware_platform":
			out[f] = v.HardwarePlatform
		case "hardware_config":
			out[f] = v.HardwareConfig
		case "timestamp_submission":
			out[f] = v.TimestampSubmission
		case "timestamp_completion":
			out[f] = v.TimestampCompletion
		case "provenance":
			out[f] = v.Provenance
		case "resource_usage":
			out[f] = v.ResourceUsage
		case "project_id":
			out[f] = v.ProjectID
		}
	}
	return out
}

// decodeJSON parses an optional serialized JSON value. nil and empty strings
// decode to nil.
func decodeJSON(s *string) (any, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal([]byte(*s), &v); err != nil {
		return nil, err
	}
	return v, nil
}

func nonNil(items []job.DataItem) []job.DataItem {
	if items == nil {
		return []job.DataItem{}
	}
	return items
}
