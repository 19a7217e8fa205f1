package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"stepify-cli/internal/model"
)

// SubmitResponse is the acknowledgment for a processing request. The backend
// echoes the video id and initial status alongside the job id.
type SubmitResponse struct {
	JobID        string          `json:"job_id"`
	VideoID      string          `json:"video_id,omitempty"`
	Status       model.JobStatus `json:"status,omitempty"`
	Mode         model.Mode      `json:"mode,omitempty"`
	OutputFormat model.Format    `json:"output_format,omitempty"`
}

type processRequest struct {
	Mode         model.Mode   `json:"mode"`
	OutputFormat model.Format `json:"output_format"`
}

type verifyTokenRequest struct {
	Token string `json:"token"`
}

// suppressed reports whether a nil-error response actually means "the caller
// tore down mid-flight". Typed wrappers answer it with a nil payload so the
// suppression travels to their callers instead of a zero-value struct.
func suppressed(ctx context.Context) bool {
	return ctx.Err() == context.Canceled
}

// ProcessVideo submits a video for processing.
func (c *Client) ProcessVideo(ctx context.Context, videoID string, mode model.Mode, format model.Format) (*SubmitResponse, error) {
	var resp SubmitResponse
	err := c.Request(ctx, "/youtube/process/"+url.PathEscape(videoID), RequestOptions{
		Method: http.MethodPost,
		Body:   processRequest{Mode: mode, OutputFormat: format},
	}, &resp)
	if err != nil || suppressed(ctx) {
		return nil, err
	}
	return &resp, nil
}

// JobStatus fetches the current snapshot of a processing job.
func (c *Client) JobStatus(ctx context.Context, jobID string) (*model.Job, error) {
	var job model.Job
	if err := c.Request(ctx, "/youtube/job-status/"+url.PathEscape(jobID), RequestOptions{}, &job); err != nil {
		return nil, err
	}
	if suppressed(ctx) {
		return nil, nil
	}
	return &job, nil
}

// VideoResult fetches the full processed payload for a completed video.
func (c *Client) VideoResult(ctx context.Context, videoID string) (*model.ProcessedVideo, error) {
	var result model.ProcessedVideo
	if err := c.Request(ctx, "/youtube/video-result/"+url.PathEscape(videoID), RequestOptions{}, &result); err != nil {
		return nil, err
	}
	if suppressed(ctx) {
		return nil, nil
	}
	return &result, nil
}

// UserVideos fetches one page of the user's processing history. skip/limit
// mirror the server's pagination; out-of-range values snap to the defaults.
func (c *Client) UserVideos(ctx context.Context, skip, limit int) ([]model.VideoSummary, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 10
	}
	endpoint := fmt.Sprintf("/youtube/user/videos?skip=%d&limit=%d", skip, limit)
	var videos []model.VideoSummary
	if err := c.Request(ctx, endpoint, RequestOptions{}, &videos); err != nil {
		return nil, err
	}
	if suppressed(ctx) {
		return nil, nil
	}
	return videos, nil
}

type deleteVideoResponse struct {
	Message string `json:"message"`
}

// DeleteVideo removes a video and its processing jobs from the account.
// An unknown id answers 404 with a detail body, surfaced as a RequestError.
func (c *Client) DeleteVideo(ctx context.Context, videoID string) (string, error) {
	var resp deleteVideoResponse
	err := c.Request(ctx, "/youtube/video/"+url.PathEscape(videoID), RequestOptions{
		Method: http.MethodDelete,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// VerifyToken validates a candidate token before it is persisted. The token
// travels in the body; nothing is attached from the store since this runs
// pre-login.
func (c *Client) VerifyToken(ctx context.Context, token string) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := c.Request(ctx, "/auth/verify-token", RequestOptions{
		Method:   http.MethodPost,
		Body:     verifyTokenRequest{Token: token},
		SkipAuth: true,
	}, &profile)
	if err != nil || suppressed(ctx) {
		return nil, err
	}
	return &profile, nil
}

// Profile fetches the profile for the currently persisted token.
func (c *Client) Profile(ctx context.Context) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := c.Request(ctx, "/auth/profile", RequestOptions{}, &profile); err != nil {
		return nil, err
	}
	if suppressed(ctx) {
		return nil, nil
	}
	return &profile, nil
}

// Plans fetches the subscription plan catalog.
func (c *Client) Plans(ctx context.Context) ([]model.SubscriptionPlan, error) {
	var plans []model.SubscriptionPlan
	if err := c.Request(ctx, "/subscription/plans", RequestOptions{SkipAuth: true}, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// SubscriptionStatus fetches the current user's subscription state.
func (c *Client) SubscriptionStatus(ctx context.Context) (*model.SubscriptionStatus, error) {
	var status model.SubscriptionStatus
	if err := c.Request(ctx, "/subscription/status", RequestOptions{}, &status); err != nil {
		return nil, err
	}
	if suppressed(ctx) {
		return nil, nil
	}
	return &status, nil
}

type pingResponse struct {
	Status string `json:"status"`
}

// Ping checks backend reachability without credentials.
func (c *Client) Ping(ctx context.Context) (string, error) {
	var resp pingResponse
	if err := c.Request(ctx, "/youtube/status", RequestOptions{SkipAuth: true}, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}
