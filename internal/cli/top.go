package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gramkit/config"
	"gramkit/internal/adapter/store"
	"gramkit/internal/usecase"
)

var (
	topSizes    []int
	topK        int
	topMinCount int
	topJSON     bool
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the most frequent n-grams in the index",
	Long: `Report the most frequent n-grams counted by 'gramkit index'.

Examples:
  gramkit top
  gramkit top -n 2 -n 3 --top-k 50 --min-count 5 --json`,
	RunE: runTop,
}

func init() {
	rootCmd.AddCommand(topCmd)
	topCmd.Flags().IntSliceVarP(&topSizes, "size", "n", nil, "n-gram size, repeatable (default: every indexed size)")
	topCmd.Flags().IntVarP(&topK, "top-k", "k", 0, "number of n-grams per size (default from config)")
	topCmd.Flags().IntVar(&topMinCount, "min-count", 0, "minimum count to report (default from config)")
	topCmd.Flags().BoolVar(&topJSON, "json", false, "output as JSON")
}

func runTop(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	dbPath := config.IndexDBPath(GetRootDir())
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("no index found. Run 'gramkit index' first")
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open index: %w", err)
	}
	defer st.Close()

	sizes := topSizes
	if len(sizes) == 0 {
		sizes, err = st.Sizes()
		if err != nil {
			return fmt.Errorf("failed to list indexed sizes: %w", err)
		}
	}
	for _, n := range sizes {
		if n < 1 {
			return fmt.Errorf("invalid size %d: must be at least 1", n)
		}
	}

	k := cfg.Report.TopK
	if topK > 0 {
		k = topK
	}
	minCount := cfg.Report.MinCount
	if topMinCount > 0 {
		minCount = topMinCount
	}

	report, err := usecase.NewReportUseCase(st, logger).Top(sizes, k, minCount)
	if err != nil {
		return fmt.Errorf("report failed: %w", err)
	}

	return writeReport(cmd.OutOrStdout(), report, outputFormat(topJSON))
}
