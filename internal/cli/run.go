package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/forPelevin/chapsub/internal/pipeline"
)

const promptText = "Enter YouTube URL: "

func run(cmd *cobra.Command, ref string) error {
	outDir, _ := cmd.Flags().GetString("out")
	ytdlpPath, _ := cmd.Flags().GetString("yt-dlp")
	subLangs, _ := cmd.Flags().GetString("sub-langs")
	verbose, _ := cmd.Flags().GetBool("verbose")

	stdout := cmd.OutOrStdout()
	if strings.TrimSpace(ref) == "" {
		var err error
		ref, err = promptReference(cmd.InOrStdin(), stdout)
		if err != nil {
			return err
		}
	}

	logger := newLogger(cmd.ErrOrStderr(), verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := pipeline.Config{
		Ref:       strings.TrimSpace(ref),
		OutDir:    outDir,
		YtDlpPath: ytdlpPath,
		SubLangs:  subLangs,
		Logf: func(format string, args ...any) {
			logger.Info(fmt.Sprintf(format, args...))
		},
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	fmt.Fprintln(stdout, "Fetching metadata and downloading subtitles...")
	res, err := pipeline.Run(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Output saved to:\n- %s\n- %s\n", res.TextPath, res.PDFPath)
	if isTerminal(stdout) {
		fmt.Fprintln(stdout, renderSummary(res.Groups))
	}
	return nil
}

// promptReference reads one line from in. A missing trailing newline is
// accepted; a blank line yields ErrNoInput.
func promptReference(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, promptText)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	ref := strings.TrimSpace(line)
	if ref == "" {
		if !strings.HasSuffix(line, "\n") {
			fmt.Fprintln(out)
		}
		return "", ErrNoInput
	}
	return ref, nil
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
