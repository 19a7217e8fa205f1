package model

import (
	"encoding/json"
	"testing"
)

func TestParseContent_StepByStepSections(t *testing.T) {
	raw := json.RawMessage(`{"sections":[{"title":"Intro","steps":["one","two"]}]}`)
	content, ok := ParseContent(FormatStepByStep, raw).(StepByStepContent)
	if !ok {
		t.Fatalf("expected StepByStepContent, got %T", ParseContent(FormatStepByStep, raw))
	}
	if len(content.Sections) != 1 || content.Sections[0].Title != "Intro" {
		t.Fatalf("unexpected sections: %+v", content.Sections)
	}
	if len(content.Sections[0].Steps) != 2 {
		t.Fatalf("unexpected steps: %+v", content.Sections[0].Steps)
	}
}

func TestParseContent_BulletPointsFlatFallback(t *testing.T) {
	// no sections: the flat-bullets branch must be taken, not the raw dump
	raw := json.RawMessage(`{"bullets":["a","b","c"]}`)
	content, ok := ParseContent(FormatBulletPoints, raw).(BulletPointsContent)
	if !ok {
		t.Fatalf("expected BulletPointsContent, got %T", ParseContent(FormatBulletPoints, raw))
	}
	if len(content.Sections) != 0 {
		t.Fatalf("expected no sections, got %+v", content.Sections)
	}
	if len(content.Bullets) != 3 {
		t.Fatalf("expected 3 flat bullets, got %+v", content.Bullets)
	}
}

func TestParseContent_UnstructuredFallback(t *testing.T) {
	// neither sections nor bullets: first-class unstructured variant
	raw := json.RawMessage(`{"something_else":true}`)
	content, ok := ParseContent(FormatBulletPoints, raw).(UnstructuredContent)
	if !ok {
		t.Fatalf("expected UnstructuredContent, got %T", ParseContent(FormatBulletPoints, raw))
	}
	if string(content.Raw) != `{"something_else":true}` {
		t.Fatalf("raw payload must be preserved, got %s", content.Raw)
	}
}

func TestParseContent_SummaryFlat(t *testing.T) {
	raw := json.RawMessage(`{"summary":"short version"}`)
	content, ok := ParseContent(FormatSummary, raw).(SummaryContent)
	if !ok {
		t.Fatalf("expected SummaryContent, got %T", ParseContent(FormatSummary, raw))
	}
	if content.Summary != "short version" {
		t.Fatalf("unexpected summary %q", content.Summary)
	}
}

func TestParseContent_ArticleParagraphs(t *testing.T) {
	raw := json.RawMessage(`{"paragraphs":["p1","p2"]}`)
	content, ok := ParseContent(FormatPodcastArticle, raw).(ArticleContent)
	if !ok {
		t.Fatalf("expected ArticleContent, got %T", ParseContent(FormatPodcastArticle, raw))
	}
	if len(content.Paragraphs) != 2 {
		t.Fatalf("unexpected paragraphs %+v", content.Paragraphs)
	}
}

func TestParseContent_MalformedPayload(t *testing.T) {
	raw := json.RawMessage(`not json at all`)
	if _, ok := ParseContent(FormatStepByStep, raw).(UnstructuredContent); !ok {
		t.Fatal("malformed payload must degrade to the unstructured variant")
	}
	if _, ok := ParseContent(FormatSummary, nil).(UnstructuredContent); !ok {
		t.Fatal("empty payload must degrade to the unstructured variant")
	}
}
