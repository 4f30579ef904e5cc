package chapters

import "github.com/forPelevin/chapsub/internal/types"

// Align buckets cues into the interval whose [Start, End) range holds the
// cue start. Each interval is matched independently against every cue, so
// cue order in the input does not matter and is preserved in each group.
// Intervals without cues are kept with an empty list.
func Align(intervals []types.ChapterInterval, cues []types.Cue) []types.ChapterGroup {
	out := make([]types.ChapterGroup, 0, len(intervals))
	for _, iv := range intervals {
		g := types.ChapterGroup{ChapterInterval: iv, Cues: []types.Cue{}}
		for _, c := range cues {
			if iv.Contains(c.Start) {
				g.Cues = append(g.Cues, c)
			}
		}
		out = append(out, g)
	}
	return out
}
