package model

import (
	"fmt"
	"strings"
)

// Mode selects how much of the transcript the backend feeds into processing.
type Mode string

const (
	ModeSimple   Mode = "simple"
	ModeDetailed Mode = "detailed"
)

// Format selects the shape of the processed output.
type Format string

const (
	FormatBulletPoints   Format = "bullet_points"
	FormatSummary        Format = "summary"
	FormatStepByStep     Format = "step_by_step"
	FormatPodcastArticle Format = "podcast_article"
)

func NormalizeMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(ModeSimple):
		return ModeSimple, nil
	case string(ModeDetailed):
		return ModeDetailed, nil
	default:
		return "", fmt.Errorf("invalid mode %q (expected simple or detailed)", strings.TrimSpace(raw))
	}
}

func NormalizeFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(FormatStepByStep), "steps":
		return FormatStepByStep, nil
	case string(FormatBulletPoints), "bullets":
		return FormatBulletPoints, nil
	case string(FormatSummary):
		return FormatSummary, nil
	case string(FormatPodcastArticle), "article":
		return FormatPodcastArticle, nil
	default:
		return "", fmt.Errorf("invalid output format %q (expected bullet_points, summary, step_by_step, or podcast_article)", strings.TrimSpace(raw))
	}
}
