package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gramkit/internal/adapter/analyzer"
	"gramkit/ngram"
)

var (
	windowSize int
	windowStep int
)

var windowsCmd = &cobra.Command{
	Use:   "windows [text]",
	Short: "Print sliding windows over the tokens of a text",
	Long: `Clean and tokenize text, then print every window of --size tokens,
advancing --step tokens at a time. Windows that would run past the end of the
text are not printed.

Examples:
  gramkit windows "a b c d e" --size 3 --step 1`,
	RunE: runWindows,
}

func init() {
	rootCmd.AddCommand(windowsCmd)
	windowsCmd.Flags().IntVar(&windowSize, "size", 3, "tokens per window")
	windowsCmd.Flags().IntVar(&windowStep, "step", 1, "tokens between window starts")
}

func runWindows(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	tokens := analyzer.NewPipeline(cfg.Clean, cfg.NGram.Stopwords).Tokenize(text)
	windows, err := ngram.SlidingWindow(tokens, windowSize, windowStep)
	if err != nil {
		return fmt.Errorf("invalid window: %w", err)
	}

	out := cmd.OutOrStdout()
	for window := range windows {
		if _, err := fmt.Fprintln(out, strings.Join(window, " ")); err != nil {
			return err
		}
	}
	return nil
}
