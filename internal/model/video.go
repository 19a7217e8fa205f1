package model

// VideoSummary is one row of the user's processing history, newest first.
type VideoSummary struct {
	ID             string    `json:"id"`
	VideoID        string    `json:"video_id"`
	Title          string    `json:"title,omitempty"`
	Status         JobStatus `json:"status"`
	ProcessingMode Mode      `json:"processing_mode,omitempty"`
	OutputFormat   Format    `json:"output_format,omitempty"`
	CreatedAt      string    `json:"created_at,omitempty"`
	UpdatedAt      string    `json:"updated_at,omitempty"`
}
