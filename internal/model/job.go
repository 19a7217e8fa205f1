package model

import "fmt"

// JobStatus is the server-reported lifecycle stage of a processing job.
type JobStatus string

const (
	StatusPending    JobStatus = "pending"
	StatusProcessing JobStatus = "processing"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// Job is a read-only projection of server-side processing state. The client
// never mutates it; it only observes snapshots while polling.
type Job struct {
	JobID        string    `json:"job_id"`
	VideoID      string    `json:"video_id"`
	Status       JobStatus `json:"status"`
	Progress     float64   `json:"progress"`
	Error        string    `json:"error,omitempty"`
	Mode         Mode      `json:"mode,omitempty"`
	OutputFormat Format    `json:"output_format,omitempty"`
	CreatedAt    string    `json:"created_at,omitempty"`
	CompletedAt  string    `json:"completed_at,omitempty"`
}

// IsTerminal reports whether polling should stop at this status.
func (s JobStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

var allowedTransitions = map[JobStatus]map[JobStatus]bool{
	"": {
		StatusPending:    true,
		StatusProcessing: true,
		StatusCompleted:  true,
		StatusFailed:     true,
	},
	StatusPending: {
		StatusPending:    true,
		StatusProcessing: true,
		StatusCompleted:  true,
		StatusFailed:     true,
	},
	StatusProcessing: {
		StatusProcessing: true,
		StatusCompleted:  true,
		StatusFailed:     true,
	},
	StatusCompleted: {
		StatusCompleted: true,
	},
	StatusFailed: {
		StatusFailed: true,
	},
}

func IsKnownStatus(status JobStatus) bool {
	_, ok := allowedTransitions[status]
	return ok
}

// CanTransition reports whether a job observed at `from` may legally be
// observed at `to` next. Terminal states only re-announce themselves; a
// response that would move a job backwards is stale and must be dropped.
func CanTransition(from, to JobStatus) bool {
	next, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return next[to]
}

// FailureMessage returns the surfaced message for a failed job.
func (j Job) FailureMessage() string {
	if j.Error != "" {
		return j.Error
	}
	return fmt.Sprintf("processing failed for job %s", j.JobID)
}
