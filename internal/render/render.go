package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stepify-cli/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	stepNumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

// Result renders a processed video for the terminal. Each declared format
// has its own branch; a payload without the expected structure degrades to
// the unstructured raw-JSON branch rather than erroring.
func Result(video *model.ProcessedVideo) string {
	var b strings.Builder
	title := video.Title
	if title == "" {
		title = video.VideoID
	}
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("video %s | format %s", video.VideoID, video.OutputFormat)) + "\n\n")

	switch content := model.ParseContent(video.OutputFormat, video.Content).(type) {
	case model.StepByStepContent:
		renderSteps(&b, content)
	case model.BulletPointsContent:
		renderBullets(&b, content)
	case model.SummaryContent:
		b.WriteString(content.Summary + "\n")
	case model.ArticleContent:
		renderArticle(&b, content)
	case model.UnstructuredContent:
		b.WriteString(mutedStyle.Render("(unstructured payload)") + "\n")
		b.WriteString(indentJSON(content.Raw) + "\n")
	}

	if video.Stats != nil {
		b.WriteString("\n" + mutedStyle.Render(fmt.Sprintf(
			"tokens in/out %d/%d | cost %.4f | mode %s",
			video.Stats.InputTokens, video.Stats.OutputTokens, video.Stats.Cost, video.Stats.Mode,
		)) + "\n")
	}
	return b.String()
}

func renderSteps(b *strings.Builder, content model.StepByStepContent) {
	if len(content.Sections) == 0 {
		writeStepList(b, content.Steps, 1)
		return
	}
	n := 1
	for _, section := range content.Sections {
		b.WriteString(sectionStyle.Render(section.Title) + "\n")
		n = writeStepList(b, section.Steps, n)
		b.WriteString("\n")
	}
}

func writeStepList(b *strings.Builder, steps []string, start int) int {
	n := start
	for _, step := range steps {
		b.WriteString(fmt.Sprintf("  %s %s\n", stepNumStyle.Render(fmt.Sprintf("%d.", n)), step))
		n++
	}
	return n
}

func renderBullets(b *strings.Builder, content model.BulletPointsContent) {
	if len(content.Sections) == 0 {
		for _, bullet := range content.Bullets {
			b.WriteString("  • " + bullet + "\n")
		}
		return
	}
	for _, section := range content.Sections {
		b.WriteString(sectionStyle.Render(section.Title) + "\n")
		for _, bullet := range section.Bullets {
			b.WriteString("  • " + bullet + "\n")
		}
		b.WriteString("\n")
	}
}

func renderArticle(b *strings.Builder, content model.ArticleContent) {
	if len(content.Sections) == 0 {
		for _, p := range content.Paragraphs {
			b.WriteString(p + "\n\n")
		}
		return
	}
	for _, section := range content.Sections {
		b.WriteString(sectionStyle.Render(section.Title) + "\n")
		for _, p := range section.Paragraphs {
			b.WriteString(p + "\n\n")
		}
	}
}

func indentJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "null"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
