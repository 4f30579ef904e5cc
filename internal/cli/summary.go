package cli

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/forPelevin/chapsub/internal/domain/transcript"
	"github.com/forPelevin/chapsub/internal/types"
)

func renderSummary(groups []types.ChapterGroup) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Start", "Chapter", "Cues", "Words"})
	for i, g := range groups {
		words := len(strings.Fields(transcript.Paragraph(g.Cues)))
		tw.AppendRow(table.Row{
			strconv.Itoa(i + 1),
			transcript.FormatTimestamp(g.Start),
			g.Title,
			strconv.Itoa(len(g.Cues)),
			strconv.Itoa(words),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
