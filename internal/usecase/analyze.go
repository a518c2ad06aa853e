package usecase

import (
	"fmt"
	"slices"

	"gramkit/internal/domain"
	"gramkit/internal/port"
	"gramkit/ngram"
)

// AnalyzeUseCase builds a frequency report for a single text held in memory.
type AnalyzeUseCase struct {
	tokenizer port.Tokenizer
}

func NewAnalyzeUseCase(tokenizer port.Tokenizer) *AnalyzeUseCase {
	return &AnalyzeUseCase{tokenizer: tokenizer}
}

// Analyze tokenizes text and reports the topK most frequent n-grams for each
// size. A size below 1 fails with ngram.ErrInvalidArgument.
func (u *AnalyzeUseCase) Analyze(text string, sizes []int, topK, minCount int) (*domain.Report, error) {
	tokens := u.tokenizer.Tokenize(text)

	report := &domain.Report{
		Sizes: slices.Clone(sizes),
		TopK:  topK,
		Stats: domain.Stats{TotalDocs: 1, TotalChunks: 1, TotalTokens: len(tokens)},
		Grams: make(map[int][]domain.GramCount, len(sizes)),
	}

	for _, n := range sizes {
		grams, err := ngram.GenerateNGrams(tokens, n)
		if err != nil {
			return nil, fmt.Errorf("size %d: %w", n, err)
		}
		report.Grams[n] = topCounts(n, ngram.CountFrequencies(grams), topK, minCount)
	}

	return report, nil
}

func topCounts(size int, freqs ngram.Frequencies, topK, minCount int) []domain.GramCount {
	out := []domain.GramCount{}
	for _, e := range freqs.Top(topK) {
		if e.Count < minCount {
			break
		}
		out = append(out, domain.GramCount{Size: size, Text: e.NGram.String(), Count: e.Count})
	}
	return out
}
