package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/forPelevin/chapsub/internal/domain/chapters"
	"github.com/forPelevin/chapsub/internal/domain/subtitles"
	"github.com/forPelevin/chapsub/internal/domain/transcript"
	"github.com/forPelevin/chapsub/internal/ports"
	"github.com/forPelevin/chapsub/internal/types"
)

// ErrNothingToDo marks runs that end early without producing output.
var ErrNothingToDo = errors.New("nothing to do")

var (
	ErrNoSubtitleFile = fmt.Errorf("%w: no subtitle file was downloaded", ErrNothingToDo)
	ErrEmptySubtitles = fmt.Errorf("%w: subtitle file is empty", ErrNothingToDo)
)

type Deps struct {
	Retriever ports.Retriever
	PDF       ports.DocumentWriter
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	Ref        string
	StagingDir string
	OutDir     string
	Logf       func(format string, args ...any)
}

type Result struct {
	Title    string
	TextPath string
	PDFPath  string
	Groups   []types.ChapterGroup
}

func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	logf := in.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	info, err := u.d.Retriever.Retrieve(ctx, in.Ref, in.StagingDir)
	if err != nil {
		return Result{}, err
	}
	logf("metadata: id=%s title=%q chapters=%d", info.ID, info.Title, len(info.Chapters))

	srtPath, err := findSubtitleFile(in.StagingDir)
	if err != nil {
		return Result{}, err
	}
	logf("subtitle file: %s", srtPath)

	data, err := os.ReadFile(srtPath)
	if err != nil {
		return Result{}, fmt.Errorf("read subtitles: %w", err)
	}
	cues, err := subtitles.ParseSRT(data)
	if err != nil {
		return Result{}, fmt.Errorf("parse subtitles: %w", err)
	}
	if len(cues) == 0 {
		return Result{}, ErrEmptySubtitles
	}

	groups := chapters.Align(chapters.Normalize(chapters.FromVideo(info)), cues)
	logf("aligned %d cues into %d chapters", len(cues), len(groups))

	title := transcript.CleanTitle(info.Title, info.ID)
	txtName, pdfName := transcript.OutputNames(title)
	res := Result{
		Title:    title,
		TextPath: filepath.Join(in.OutDir, txtName),
		PDFPath:  filepath.Join(in.OutDir, pdfName),
		Groups:   groups,
	}

	if err := transcript.WriteText(res.TextPath, groups); err != nil {
		return Result{}, fmt.Errorf("write text: %w", err)
	}
	if err := u.d.PDF.WritePDF(res.PDFPath, transcript.BuildDocument(title, groups)); err != nil {
		return Result{}, fmt.Errorf("write pdf: %w", err)
	}
	return res, nil
}

// findSubtitleFile returns the first *.srt entry of dir in name order.
func findSubtitleFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read staging dir: %w", err)
	}
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), ".srt") {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", ErrNoSubtitleFile
}
