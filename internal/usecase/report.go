package usecase

import (
	"fmt"

	"go.uber.org/zap"
	"gramkit/internal/domain"
	"gramkit/internal/port"
)

// ReportUseCase reads frequency reports from the index.
type ReportUseCase struct {
	store  port.IndexStore
	logger *zap.Logger
}

func NewReportUseCase(store port.IndexStore, logger *zap.Logger) *ReportUseCase {
	return &ReportUseCase{store: store, logger: logger}
}

// Top returns the topK n-grams with at least minCount occurrences for each
// size.
func (u *ReportUseCase) Top(sizes []int, topK, minCount int) (*domain.Report, error) {
	stats, err := u.store.GetStats()
	if err != nil {
		return nil, fmt.Errorf("failed to read stats: %w", err)
	}

	report := &domain.Report{
		Sizes: sizes,
		TopK:  topK,
		Stats: stats,
		Grams: make(map[int][]domain.GramCount, len(sizes)),
	}

	for _, n := range sizes {
		grams, err := u.store.TopGrams(n, topK, minCount)
		if err != nil {
			return nil, fmt.Errorf("failed to read %d-grams: %w", n, err)
		}
		if grams == nil {
			grams = []domain.GramCount{}
		}
		u.logger.Debug("loaded top n-grams", zap.Int("size", n), zap.Int("count", len(grams)))
		report.Grams[n] = grams
	}

	return report, nil
}
