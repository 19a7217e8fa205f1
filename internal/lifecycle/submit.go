package lifecycle

import (
	"context"
	"fmt"

	"stepify-cli/internal/api"
	"stepify-cli/internal/model"
	"stepify-cli/internal/videoid"
)

// Submission is the accepted job handle the poll loop runs against.
type Submission struct {
	JobID        string          `json:"job_id"`
	VideoID      string          `json:"video_id"`
	Status       model.JobStatus `json:"status,omitempty"`
	Mode         model.Mode      `json:"mode"`
	OutputFormat model.Format    `json:"output_format"`
}

// Submit resolves the input to a video id and posts the processing request.
// On failure the lifecycle resets to idle; the caller surfaces the message.
func Submit(ctx context.Context, client *api.Client, input string, mode model.Mode, format model.Format) (*Submission, error) {
	id := videoid.Extract(input)
	resp, err := client.ProcessVideo(ctx, id, mode, format)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, ErrStopped
	}
	if resp.JobID == "" {
		return nil, fmt.Errorf("backend accepted video %s without a job id", id)
	}
	sub := &Submission{
		JobID:        resp.JobID,
		VideoID:      resp.VideoID,
		Status:       resp.Status,
		Mode:         mode,
		OutputFormat: format,
	}
	if sub.VideoID == "" {
		sub.VideoID = id
	}
	return sub, nil
}
