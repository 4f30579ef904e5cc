package types

import "time"

type Cue struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

type ChapterSpec struct {
	Start time.Duration
	Title string
}

// ChapterInterval is a normalized chapter. A nil End means the chapter runs
// to the end of the video.
type ChapterInterval struct {
	Start time.Duration
	End   *time.Duration
	Title string
}

// Contains reports whether t falls in [Start, End).
func (c ChapterInterval) Contains(t time.Duration) bool {
	if t < c.Start {
		return false
	}
	return c.End == nil || t < *c.End
}

type ChapterGroup struct {
	ChapterInterval
	Cues []Cue
}

type VideoInfo struct {
	ID       string
	Title    string
	Chapters []ChapterSpec
}

type BlockKind int

const (
	BlockTitle BlockKind = iota
	BlockHeading
	BlockSubHeading
	BlockTimestamp
	BlockParagraph
	BlockSpacer
)

func (k BlockKind) String() string {
	switch k {
	case BlockTitle:
		return "title"
	case BlockHeading:
		return "heading"
	case BlockSubHeading:
		return "subheading"
	case BlockTimestamp:
		return "timestamp"
	case BlockParagraph:
		return "paragraph"
	case BlockSpacer:
		return "spacer"
	default:
		return "unknown"
	}
}

// Block is one element of a paginated document's content stream. Height is
// only meaningful for spacers and is given in millimetres.
type Block struct {
	Kind   BlockKind
	Text   string
	Height float64
}

type Document struct {
	Title  string
	Blocks []Block
}
