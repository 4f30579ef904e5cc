package transcript

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	// Placeholder stands in for the paragraph of a chapter without cues.
	Placeholder = "(No subtitle text for this chapter)"

	maxFileStem  = 200
	outputSuffix = "_chapters_subtitles"
)

// FormatTimestamp renders whole seconds as MM:SS, or HH:MM:SS from one hour on.
func FormatTimestamp(d time.Duration) string {
	total := int64(d / time.Second)
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// CleanTitle flattens a metadata title onto one line, falling back to id.
func CleanTitle(title, id string) string {
	t := strings.ReplaceAll(title, "\r", "")
	t = strings.ReplaceAll(t, "\n", " ")
	t = strings.TrimSpace(t)
	if t == "" {
		t = strings.TrimSpace(id)
	}
	if t == "" {
		t = "video"
	}
	return t
}

// SanitizeFileStem keeps letters, digits, spaces and ". _ - ( )", replaces
// every other rune with '_' and truncates to 200 runes.
func SanitizeFileStem(title string) string {
	var b strings.Builder
	n := 0
	for _, r := range norm.NFC.String(title) {
		if n == maxFileStem {
			break
		}
		switch {
		case unicode.IsLetter(r), unicode.IsNumber(r), strings.ContainsRune(" ._-()", r):
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
		n++
	}
	return b.String()
}

// OutputNames returns the text and PDF file names for a video title.
func OutputNames(title string) (txt, pdf string) {
	stem := SanitizeFileStem(title) + outputSuffix
	return stem + ".txt", stem + ".pdf"
}
