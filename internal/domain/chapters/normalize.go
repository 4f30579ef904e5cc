package chapters

import (
	"sort"
	"strings"

	"github.com/forPelevin/chapsub/internal/types"
)

// DefaultTitle names the single synthetic chapter used when a video declares none.
const DefaultTitle = "Chapter"

// Normalize turns raw chapter markers into sorted, contiguous intervals; the
// last one is open-ended. Markers sharing a start keep their input order, so
// the earlier one collapses to a zero-length interval.
func Normalize(specs []types.ChapterSpec) []types.ChapterInterval {
	if len(specs) == 0 {
		return []types.ChapterInterval{{Start: 0, Title: DefaultTitle}}
	}

	sorted := make([]types.ChapterSpec, len(specs))
	copy(sorted, specs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	out := make([]types.ChapterInterval, len(sorted))
	for i, s := range sorted {
		out[i] = types.ChapterInterval{Start: s.Start, Title: strings.TrimSpace(s.Title)}
		if i+1 < len(sorted) {
			end := sorted[i+1].Start
			out[i].End = &end
		}
	}
	return out
}

// FromVideo extracts chapter markers from retrieval metadata. Negative
// offsets are clamped to the start of the video.
func FromVideo(info types.VideoInfo) []types.ChapterSpec {
	if len(info.Chapters) == 0 {
		return nil
	}
	out := make([]types.ChapterSpec, 0, len(info.Chapters))
	for _, c := range info.Chapters {
		start := c.Start
		if start < 0 {
			start = 0
		}
		out = append(out, types.ChapterSpec{Start: start, Title: c.Title})
	}
	return out
}
