package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/forPelevin/chapsub/internal/ports"
	"github.com/forPelevin/chapsub/internal/ports/adapters/pdf"
	"github.com/forPelevin/chapsub/internal/ports/adapters/ytdlp"
	"github.com/forPelevin/chapsub/internal/usecase"
)

const stagingPrefix = "yt_subs_"

type Config struct {
	Ref    string
	OutDir string
	Logf   func(format string, args ...any)

	// TempRoot is where the staging directory is created. If empty, the
	// system temp directory is used.
	TempRoot string

	YtDlpPath string
	SubLangs  string
}

func (c Config) Validate() error {
	if err := ytdlp.ValidateReference(c.Ref); err != nil {
		return err
	}
	if c.OutDir == "" {
		return errors.New("output directory is empty")
	}
	st, err := os.Stat(c.OutDir)
	if err != nil {
		return fmt.Errorf("stat output directory: %w", err)
	}
	if !st.IsDir() {
		return fmt.Errorf("output directory %q is not a directory", c.OutDir)
	}
	return nil
}

// Run fetches subtitles for cfg.Ref and writes both transcripts into
// cfg.OutDir. The staging directory is removed on every return path.
func Run(ctx context.Context, cfg Config) (usecase.Result, error) {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	// adapters
	ret := ytdlp.New(cfg.YtDlpPath, cfg.SubLangs)
	doc := pdf.New(true)

	uc := usecase.New(usecase.Deps{
		Retriever: ret,
		PDF:       doc,
	})

	outDir, err := filepath.Abs(cfg.OutDir)
	if err != nil {
		return usecase.Result{}, err
	}

	stagingDir, err := os.MkdirTemp(cfg.TempRoot, stagingPrefix)
	if err != nil {
		return usecase.Result{}, fmt.Errorf("create staging dir: %w", err)
	}
	defer removeStaging(stagingDir, logf)
	logf("staging: %s", stagingDir)

	return uc.Run(ctx, usecase.Input{
		Ref:        cfg.Ref,
		StagingDir: stagingDir,
		OutDir:     outDir,
		Logf:       logf,
	})
}

// removeStaging deletes dir; failures are logged and otherwise ignored so
// they never replace the run's own error.
func removeStaging(dir string, logf func(string, ...any)) {
	if err := os.RemoveAll(dir); err != nil {
		logf("staging cleanup failed: %s: %v", dir, err)
		return
	}
	logf("staging removed: %s", dir)
}

// ensure adapters implement ports
var _ ports.Retriever = (*ytdlp.Adapter)(nil)
var _ ports.DocumentWriter = (*pdf.Adapter)(nil)
