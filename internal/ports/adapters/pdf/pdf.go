package pdf

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/forPelevin/chapsub/internal/types"
)

type style struct {
	family string
	font   string
	size   float64
	line   float64
	align  string
	before float64
	after  float64
}

var styles = map[types.BlockKind]style{
	types.BlockTitle:      {family: "Helvetica", font: "B", size: 20, line: 9, align: "C", after: 2},
	types.BlockHeading:    {family: "Helvetica", font: "B", size: 14, line: 7, align: "L", before: 4, after: 2},
	types.BlockSubHeading: {family: "Helvetica", font: "B", size: 12, line: 6, align: "L", after: 1},
	types.BlockTimestamp:  {family: "Helvetica", font: "I", size: 10, line: 5, align: "L"},
	types.BlockParagraph:  {family: "Times", font: "", size: 11, line: 5, align: "J"},
}

type Adapter struct {
	compress bool
}

// New returns an A4 PDF writer. Compression is normally on; disabling it
// leaves page content streams readable.
func New(compress bool) *Adapter {
	return &Adapter{compress: compress}
}

func (a *Adapter) WritePDF(path string, doc types.Document) error {
	f := fpdf.New("P", "mm", "A4", "")
	f.SetCompression(a.compress)
	f.SetTitle(doc.Title, true)
	f.SetCreator("chapsub", false)
	f.SetMargins(20, 20, 20)
	f.SetAutoPageBreak(true, 20)
	f.AddPage()

	for _, b := range doc.Blocks {
		if b.Kind == types.BlockSpacer {
			f.Ln(b.Height)
			continue
		}
		st, ok := styles[b.Kind]
		if !ok {
			return fmt.Errorf("pdf: unsupported block %s", b.Kind)
		}
		if st.before > 0 {
			f.Ln(st.before)
		}
		f.SetFont(st.family, st.font, st.size)
		f.MultiCell(0, st.line, encode(b.Text), "", st.align, false)
		if st.after > 0 {
			f.Ln(st.after)
		}
	}
	if err := f.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return nil
}

// encode maps text onto Windows-1252, the encoding of the PDF core fonts.
// Runes outside it become '?'.
func encode(s string) string {
	var b strings.Builder
	for _, r := range s {
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('?')
	}
	return b.String()
}
