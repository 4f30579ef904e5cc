package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/forPelevin/chapsub/internal/usecase"
)

// Exit statuses.
const (
	exitOK      = 0
	exitError   = 1
	exitNothing = 2
)

// ErrNoInput is returned when the prompt yields an empty reference.
var ErrNoInput = errors.New("no video reference provided")

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present
	os.Exit(Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Execute runs the root command and maps its outcome to an exit status.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		return report(stdout, stderr, err)
	}
	return exitOK
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "chapsub [video-url]",
		Short:        "Write a per-chapter subtitle transcript (text and PDF) for a video",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := ""
			if len(args) == 1 {
				ref = args[0]
			}
			return run(cmd, ref)
		},
	}
	root.SilenceErrors = true

	root.Flags().String("out", getenvDefault("CHAPSUB_OUT_DIR", "."), "Output directory")
	root.Flags().String("yt-dlp", getenvDefault("CHAPSUB_YTDLP", "yt-dlp"), "Path to the yt-dlp binary")
	root.Flags().String("sub-langs", os.Getenv("CHAPSUB_SUB_LANGS"), "Subtitle languages passed to yt-dlp (e.g. en,de)")
	root.Flags().BoolP("verbose", "v", false, "Log pipeline steps to stderr")
	return root
}

// report prints the single user-facing line for a failed run.
func report(stdout, stderr io.Writer, err error) int {
	switch {
	case errors.Is(err, ErrNoInput):
		fmt.Fprintln(stdout, "No URL provided. Exiting.")
		return exitNothing
	case errors.Is(err, usecase.ErrNoSubtitleFile):
		fmt.Fprintln(stdout, "No subtitles (.srt) were downloaded.")
		return exitNothing
	case errors.Is(err, usecase.ErrEmptySubtitles):
		fmt.Fprintln(stdout, "Subtitle file is empty.")
		return exitNothing
	case errors.Is(err, context.Canceled):
		return exitError
	}
	fmt.Fprintln(stderr, "Error: "+oneLine(err.Error()))
	return exitError
}
