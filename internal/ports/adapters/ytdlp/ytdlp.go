package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/forPelevin/chapsub/internal/types"
)

const outputTemplate = "%(id)s.%(ext)s"

type Adapter struct {
	bin      string
	subLangs string
}

// New returns a retriever backed by the yt-dlp binary. An empty subLangs
// leaves language selection to yt-dlp.
func New(binPath, subLangs string) *Adapter {
	if binPath == "" {
		binPath = "yt-dlp"
	}
	return &Adapter{bin: binPath, subLangs: strings.TrimSpace(subLangs)}
}

// Retrieve prints the video metadata as JSON and writes its subtitles,
// converted to SubRip, into stagingDir. yt-dlp picks author-provided tracks
// over automatic captions when both exist for a language.
func (a *Adapter) Retrieve(ctx context.Context, ref, stagingDir string) (types.VideoInfo, error) {
	cmd := exec.CommandContext(ctx, a.bin, a.args(ref, stagingDir)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if reason := failureReason(stderr.String()); reason != "" {
			return types.VideoInfo{}, fmt.Errorf("yt-dlp: %s: %w", reason, err)
		}
		return types.VideoInfo{}, fmt.Errorf("yt-dlp: %w", err)
	}
	return decodeInfo(stdout.Bytes())
}

func (a *Adapter) args(ref, stagingDir string) []string {
	args := []string{
		"--dump-single-json",
		"--no-simulate",
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-format", "srt/best",
		"--convert-subs", "srt",
		"--no-progress",
		"--no-warnings",
		"-o", filepath.Join(stagingDir, outputTemplate),
	}
	if a.subLangs != "" {
		args = append(args, "--sub-langs", a.subLangs)
	}
	return append(args, "--", ref)
}

type infoJSON struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Chapters []struct {
		StartTime float64 `json:"start_time"`
		Title     string  `json:"title"`
	} `json:"chapters"`
}

func decodeInfo(b []byte) (types.VideoInfo, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return types.VideoInfo{}, errors.New("yt-dlp: empty metadata output")
	}
	var raw infoJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return types.VideoInfo{}, fmt.Errorf("yt-dlp: decode metadata: %w", err)
	}
	info := types.VideoInfo{ID: raw.ID, Title: raw.Title}
	for _, c := range raw.Chapters {
		info.Chapters = append(info.Chapters, types.ChapterSpec{Start: dur(c.StartTime), Title: c.Title})
	}
	return info, nil
}

// failureReason picks the last "ERROR:" line yt-dlp printed, or the last
// non-empty line when there is none.
func failureReason(stderr string) string {
	var last, lastErr string
	for _, l := range strings.Split(stderr, "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		last = l
		if strings.HasPrefix(l, "ERROR:") {
			lastErr = strings.TrimSpace(strings.TrimPrefix(l, "ERROR:"))
		}
	}
	if lastErr != "" {
		return truncate(lastErr, 400)
	}
	return truncate(last, 400)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func dur(sec float64) time.Duration { return time.Duration(sec * float64(time.Second)) }
