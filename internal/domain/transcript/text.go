package transcript

import (
	"os"
	"strings"

	"github.com/forPelevin/chapsub/internal/types"
)

const header = "Chapter"

// Paragraph joins cue texts into one line: inner newlines become spaces,
// each cue is trimmed and blank cues are skipped.
func Paragraph(cues []types.Cue) string {
	parts := make([]string, 0, len(cues))
	for _, c := range cues {
		t := strings.TrimSpace(strings.ReplaceAll(c.Text, "\n", " "))
		if t != "" {
			parts = append(parts, t)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// RenderText builds the plain-text transcript.
func RenderText(groups []types.ChapterGroup) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for _, g := range groups {
		b.WriteString(FormatTimestamp(g.Start))
		b.WriteString("\n")
		b.WriteString(g.Title)
		b.WriteString("\n")
		if len(g.Cues) == 0 {
			b.WriteString(Placeholder)
			b.WriteString("\n\n")
			continue
		}
		b.WriteString(FormatTimestamp(g.Cues[0].Start))
		b.WriteString("\n")
		b.WriteString(Paragraph(g.Cues))
		b.WriteString("\n\n")
	}
	return b.String()
}

func WriteText(path string, groups []types.ChapterGroup) error {
	return os.WriteFile(path, []byte(RenderText(groups)), 0o644)
}
