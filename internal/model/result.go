package model

import "encoding/json"

// ProcessedVideo is the final payload for a completed job, fetched once per
// view and immutable afterwards. Content stays raw until ParseContent shapes
// it according to OutputFormat.
type ProcessedVideo struct {
	VideoID      string          `json:"video_id"`
	Title        string          `json:"title"`
	OutputFormat Format          `json:"output_format"`
	Content      json.RawMessage `json:"content"`
	Stats        *ResultStats    `json:"stats,omitempty"`
}

type ResultStats struct {
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	Cost         float64 `json:"cost"`
	Mode         Mode    `json:"mode,omitempty"`
}

// ResultContent is a closed set of renderable content shapes. The raw-JSON
// fallback is the UnstructuredContent variant, a first-class case rather than
// an error path.
type ResultContent interface {
	resultContent()
}

type StepSection struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

type BulletSection struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

type ArticleSection struct {
	Title      string   `json:"title"`
	Paragraphs []string `json:"paragraphs"`
}

// StepByStepContent carries either titled sections or, when the payload has
// no sections, a flat list of steps.
type StepByStepContent struct {
	Sections []StepSection
	Steps    []string
}

type BulletPointsContent struct {
	Sections []BulletSection
	Bullets  []string
}

type SummaryContent struct {
	Summary string
}

type ArticleContent struct {
	Sections   []ArticleSection
	Paragraphs []string
}

type UnstructuredContent struct {
	Raw json.RawMessage
}

func (StepByStepContent) resultContent()   {}
func (BulletPointsContent) resultContent() {}
func (SummaryContent) resultContent()      {}
func (ArticleContent) resultContent()      {}
func (UnstructuredContent) resultContent() {}

// contentProbe covers every field any format may carry; presence decides the
// branch, not the declared format alone.
type contentProbe struct {
	Sections   json.RawMessage `json:"sections"`
	Steps      []string        `json:"steps"`
	Bullets    []string        `json:"bullets"`
	Summary    string          `json:"summary"`
	Paragraphs []string        `json:"paragraphs"`
	Text       string          `json:"text"`
}

// ParseContent shapes a raw content payload for its declared format. Payloads
// missing the expected structure degrade to flat fields first and to
// UnstructuredContent last.
func ParseContent(format Format, raw json.RawMessage) ResultContent {
	if len(raw) == 0 {
		return UnstructuredContent{Raw: raw}
	}
	var probe contentProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return UnstructuredContent{Raw: raw}
	}

	switch format {
	case FormatStepByStep:
		if len(probe.Sections) > 0 {
			var sections []StepSection
			if err := json.Unmarshal(probe.Sections, &sections); err == nil && len(sections) > 0 {
				return StepByStepContent{Sections: sections}
			}
		}
		if len(probe.Steps) > 0 {
			return StepByStepContent{Steps: probe.Steps}
		}
	case FormatBulletPoints:
		if len(probe.Sections) > 0 {
			var sections []BulletSection
			if err := json.Unmarshal(probe.Sections, &sections); err == nil && len(sections) > 0 {
				return BulletPointsContent{Sections: sections}
			}
		}
		if len(probe.Bullets) > 0 {
			return BulletPointsContent{Bullets: probe.Bullets}
		}
	case FormatSummary:
		if probe.Summary != "" {
			return SummaryContent{Summary: probe.Summary}
		}
		if probe.Text != "" {
			return SummaryContent{Summary: probe.Text}
		}
	case FormatPodcastArticle:
		if len(probe.Sections) > 0 {
			var sections []ArticleSection
			if err := json.Unmarshal(probe.Sections, &sections); err == nil && len(sections) > 0 {
				return ArticleContent{Sections: sections}
			}
		}
		if len(probe.Paragraphs) > 0 {
			return ArticleContent{Paragraphs: probe.Paragraphs}
		}
	}
	return UnstructuredContent{Raw: raw}
}
