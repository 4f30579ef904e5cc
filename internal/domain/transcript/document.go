package transcript

import "github.com/forPelevin/chapsub/internal/types"

const (
	titleGap   = 6.35 // quarter inch, mm
	chapterGap = 5.08
)

// BuildDocument lays out the same content as RenderText as a block stream
// for paginated renderers.
func BuildDocument(title string, groups []types.ChapterGroup) types.Document {
	blocks := make([]types.Block, 0, 3+len(groups)*5)
	blocks = append(blocks,
		types.Block{Kind: types.BlockTitle, Text: title},
		types.Block{Kind: types.BlockSpacer, Height: titleGap},
		types.Block{Kind: types.BlockHeading, Text: header},
	)
	for _, g := range groups {
		blocks = append(blocks,
			types.Block{Kind: types.BlockHeading, Text: FormatTimestamp(g.Start)},
			types.Block{Kind: types.BlockSubHeading, Text: g.Title},
		)
		if len(g.Cues) == 0 {
			blocks = append(blocks, types.Block{Kind: types.BlockParagraph, Text: Placeholder})
		} else {
			blocks = append(blocks,
				types.Block{Kind: types.BlockTimestamp, Text: FormatTimestamp(g.Cues[0].Start)},
				types.Block{Kind: types.BlockParagraph, Text: Paragraph(g.Cues)},
			)
		}
		blocks = append(blocks, types.Block{Kind: types.BlockSpacer, Height: chapterGap})
	}
	return types.Document{Title: title, Blocks: blocks}
}
