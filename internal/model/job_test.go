package model

import "testing"

func TestCanTransition_AllowsExpectedPaths(t *testing.T) {
	cases := []struct {
		from JobStatus
		to   JobStatus
	}{
		{"", StatusPending},
		{"", StatusProcessing},
		{StatusPending, StatusProcessing},
		{StatusPending, StatusCompleted},
		{StatusProcessing, StatusCompleted},
		{StatusProcessing, StatusFailed},
		{StatusCompleted, StatusCompleted},
	}

	for _, tc := range cases {
		if !CanTransition(tc.from, tc.to) {
			t.Fatalf("expected transition %q -> %q to be allowed", tc.from, tc.to)
		}
	}
}

func TestCanTransition_RejectsStalePaths(t *testing.T) {
	cases := []struct {
		from JobStatus
		to   JobStatus
	}{
		{StatusProcessing, StatusPending},
		{StatusCompleted, StatusProcessing},
		{StatusCompleted, StatusFailed},
		{StatusFailed, StatusProcessing},
		{"not_a_state", StatusPending},
	}

	for _, tc := range cases {
		if CanTransition(tc.from, tc.to) {
			t.Fatalf("expected transition %q -> %q to be rejected", tc.from, tc.to)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if !StatusCompleted.IsTerminal() || !StatusFailed.IsTerminal() {
		t.Fatal("completed and failed must be terminal")
	}
	if StatusPending.IsTerminal() || StatusProcessing.IsTerminal() {
		t.Fatal("pending and processing must not be terminal")
	}
}

func TestFailureMessage(t *testing.T) {
	job := Job{JobID: "job-1", Error: "decode error"}
	if got := job.FailureMessage(); got != "decode error" {
		t.Fatalf("expected server error verbatim, got %q", got)
	}

	job = Job{JobID: "job-1"}
	if got := job.FailureMessage(); got == "" {
		t.Fatal("expected a generic fallback message")
	}
}

func TestNormalizeMode(t *testing.T) {
	if mode, err := NormalizeMode(""); err != nil || mode != ModeSimple {
		t.Fatalf("empty mode should default to simple, got %q err=%v", mode, err)
	}
	if mode, err := NormalizeMode(" Detailed "); err != nil || mode != ModeDetailed {
		t.Fatalf("expected detailed, got %q err=%v", mode, err)
	}
	if _, err := NormalizeMode("turbo"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestNormalizeFormat(t *testing.T) {
	cases := []struct {
		raw  string
		want Format
	}{
		{"", FormatStepByStep},
		{"steps", FormatStepByStep},
		{"bullet_points", FormatBulletPoints},
		{"bullets", FormatBulletPoints},
		{"summary", FormatSummary},
		{"article", FormatPodcastArticle},
		{"podcast_article", FormatPodcastArticle},
	}
	for _, tc := range cases {
		got, err := NormalizeFormat(tc.raw)
		if err != nil || got != tc.want {
			t.Fatalf("NormalizeFormat(%q) = %q err=%v, want %q", tc.raw, got, err, tc.want)
		}
	}
	if _, err := NormalizeFormat("haiku"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
