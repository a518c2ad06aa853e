package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gramkit/internal/domain"
)

// writeReport prints a report as indented JSON or as one block per n-gram
// size.
func writeReport(w io.Writer, report *domain.Report, format string) error {
	if format == "json" {
		output, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(output))
		return err
	}

	fmt.Fprintf(w, "Documents: %d  Chunks: %d  Tokens: %d\n",
		report.Stats.TotalDocs, report.Stats.TotalChunks, report.Stats.TotalTokens)
	for _, n := range report.Sizes {
		grams := report.Grams[n]
		fmt.Fprintf(w, "\n--- top %d %d-grams ---\n", len(grams), n)
		if len(grams) == 0 {
			fmt.Fprintln(w, "(none)")
			continue
		}
		for i, g := range grams {
			fmt.Fprintf(w, "%4d. %-40s %d\n", i+1, g.Text, g.Count)
		}
	}
	return nil
}

func outputFormat(asJSON bool) string {
	if asJSON {
		return "json"
	}
	return GetConfig().Report.Output
}
