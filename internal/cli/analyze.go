package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gramkit/internal/adapter/analyzer"
	"gramkit/internal/usecase"
	"gramkit/ngram"
)

var (
	analyzeSizes     []int
	analyzeTopK      int
	analyzeMinCount  int
	analyzeJSON      bool
	analyzeKeepCase  bool
	analyzeKeepPunct bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Report the most frequent n-grams of a text",
	Long: `Clean and tokenize text given as arguments (or read from stdin) and
report the most frequent n-grams for each requested size.

Examples:
  gramkit analyze "the cat sat on the mat" -n 2
  gramkit analyze -n 1 -n 2 -k 10 --json < chapter.txt`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().IntSliceVarP(&analyzeSizes, "size", "n", nil, "n-gram size, repeatable (default from config)")
	analyzeCmd.Flags().IntVarP(&analyzeTopK, "top-k", "k", 0, "number of n-grams per size (default from config)")
	analyzeCmd.Flags().IntVar(&analyzeMinCount, "min-count", 0, "minimum count to report (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeKeepCase, "keep-case", false, "do not lowercase the text")
	analyzeCmd.Flags().BoolVar(&analyzeKeepPunct, "keep-punct", false, "do not remove punctuation")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	opts := cleanOptions(analyzeKeepCase, analyzeKeepPunct)
	pipeline := analyzer.NewPipeline(opts, cfg.NGram.Stopwords)
	analyzeUC := usecase.NewAnalyzeUseCase(pipeline)

	sizes := cfg.NGram.Sizes
	if len(analyzeSizes) > 0 {
		sizes = analyzeSizes
	}
	topK := cfg.Report.TopK
	if analyzeTopK > 0 {
		topK = analyzeTopK
	}
	minCount := cfg.Report.MinCount
	if analyzeMinCount > 0 {
		minCount = analyzeMinCount
	}

	report, err := analyzeUC.Analyze(text, sizes, topK, minCount)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return writeReport(cmd.OutOrStdout(), report, outputFormat(analyzeJSON))
}

// cleanOptions applies command-line overrides to the configured options.
func cleanOptions(keepCase, keepPunct bool) ngram.CleanOptions {
	opts := GetConfig().Clean
	if keepCase {
		opts.Lowercase = false
	}
	if keepPunct {
		opts.RemovePunctuation = false
	}
	return opts
}
