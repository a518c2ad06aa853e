package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gramkit/ngram"
)

var (
	cleanKeepCase  bool
	cleanKeepPunct bool
	cleanTokens    bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean [text]",
	Short: "Print normalized text",
	Long: `Lowercase text, strip punctuation and collapse whitespace, printing the
result. With --tokens, print one token per line instead.

Examples:
  gramkit clean "Hello,   World!"
  gramkit clean --keep-case --tokens < notes.txt`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().BoolVar(&cleanKeepCase, "keep-case", false, "do not lowercase the text")
	cleanCmd.Flags().BoolVar(&cleanKeepPunct, "keep-punct", false, "do not remove punctuation")
	cleanCmd.Flags().BoolVar(&cleanTokens, "tokens", false, "print one token per line")
}

func runClean(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	cleaned := ngram.CleanText(text, cleanOptions(cleanKeepCase, cleanKeepPunct))
	out := cmd.OutOrStdout()
	if !cleanTokens {
		_, err = fmt.Fprintln(out, cleaned)
		return err
	}
	for _, tok := range ngram.Tokenize(cleaned) {
		if _, err := fmt.Fprintln(out, tok); err != nil {
			return err
		}
	}
	return nil
}
