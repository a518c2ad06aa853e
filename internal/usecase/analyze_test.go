package usecase

import (
	"errors"
	"testing"

	"gramkit/internal/adapter/analyzer"
	"gramkit/ngram"
)

func TestAnalyze(t *testing.T) {
	uc := NewAnalyzeUseCase(analyzer.NewPipeline(ngram.DefaultCleanOptions(), false))

	report, err := uc.Analyze("To be, or not to be.", []int{1, 2}, 2, 1)
	if err != nil {
		t.Fatal(err)
	}

	if report.Stats.TotalTokens != 6 {
		t.Errorf("expected 6 tokens, got %d", report.Stats.TotalTokens)
	}

	unigrams := report.Grams[1]
	if len(unigrams) != 2 {
		t.Fatalf("expected 2 unigrams, got %+v", unigrams)
	}
	if unigrams[0].Text != "be" || unigrams[0].Count != 2 || unigrams[1].Text != "to" || unigrams[1].Count != 2 {
		t.Errorf("unexpected unigrams: %+v", unigrams)
	}

	bigrams := report.Grams[2]
	if len(bigrams) == 0 || bigrams[0].Text != "to be" || bigrams[0].Count != 2 {
		t.Errorf("unexpected bigrams: %+v", bigrams)
	}
}

func TestAnalyze_MinCount(t *testing.T) {
	uc := NewAnalyzeUseCase(analyzer.NewPipeline(ngram.DefaultCleanOptions(), false))

	report, err := uc.Analyze("a a b", []int{1}, 10, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := report.Grams[1]; len(got) != 1 || got[0].Text != "a" {
		t.Errorf("expected only 'a' to pass min count, got %+v", got)
	}
}

func TestAnalyze_InvalidSize(t *testing.T) {
	uc := NewAnalyzeUseCase(analyzer.NewPipeline(ngram.DefaultCleanOptions(), false))

	if _, err := uc.Analyze("a b", []int{2, 0}, 10, 1); !errors.Is(err, ngram.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestAnalyze_EmptyText(t *testing.T) {
	uc := NewAnalyzeUseCase(analyzer.NewPipeline(ngram.DefaultCleanOptions(), false))

	report, err := uc.Analyze("", []int{3}, 5, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := report.Grams[3]; got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", got)
	}
}
