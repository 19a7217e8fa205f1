package videoid

import (
	"regexp"
	"strings"
)

var (
	reWatch = regexp.MustCompile(`youtube\.com/watch\?(?:[^#\s]*&)?v=([A-Za-z0-9_-]{11})`)
	reEmbed = regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{11})`)
	reShort = regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`)
	reBare  = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
)

// Extract resolves a YouTube URL to its 11-character video id. Recognized
// shapes are watch?v=, embed/, and youtu.be/ links; a bare 11-character id
// passes through unchanged. Anything else is returned as-is and left to the
// backend to reject, so pasting an unusual-but-valid identifier still works.
func Extract(input string) string {
	raw := strings.TrimSpace(input)
	if reBare.MatchString(raw) {
		return raw
	}
	for _, re := range []*regexp.Regexp{reWatch, reEmbed, reShort} {
		if m := re.FindStringSubmatch(raw); len(m) > 1 {
			return m[1]
		}
	}
	return raw
}
