package analyzer

import (
	"slices"
	"testing"

	"gramkit/ngram"
)

func TestPipeline_Tokenize_Defaults(t *testing.T) {
	p := NewPipeline(ngram.DefaultCleanOptions(), false)

	tokens := p.Tokenize("The quick, brown fox!")
	want := []string{"the", "quick", "brown", "fox"}
	if !slices.Equal(tokens, want) {
		t.Errorf("expected %v, got %v", want, tokens)
	}
}

func TestPipeline_Tokenize_KeepCase(t *testing.T) {
	p := NewPipeline(ngram.CleanOptions{RemovePunctuation: true}, false)

	tokens := p.Tokenize("New York, New York")
	want := []string{"New", "York", "New", "York"}
	if !slices.Equal(tokens, want) {
		t.Errorf("expected %v, got %v", want, tokens)
	}
}

func TestPipeline_StopwordRemoval(t *testing.T) {
	p := NewPipeline(ngram.DefaultCleanOptions(), true)

	tokens := p.Tokenize("The quick brown fox is over the fence")
	for _, token := range tokens {
		if token == "the" || token == "is" {
			t.Errorf("stopword %q should be removed, got %v", token, tokens)
		}
	}
	if !slices.Contains(tokens, "fox") {
		t.Errorf("expected content words to remain, got %v", tokens)
	}
}

func TestPipeline_CountTokens(t *testing.T) {
	p := NewPipeline(ngram.DefaultCleanOptions(), false)

	if count := p.CountTokens("hello world, this is a test"); count != 6 {
		t.Errorf("expected 6 tokens, got %d", count)
	}
}

func TestPipeline_EmptyInput(t *testing.T) {
	p := NewPipeline(ngram.DefaultCleanOptions(), true)

	if tokens := p.Tokenize(""); len(tokens) != 0 {
		t.Errorf("expected 0 tokens for empty input, got %d", len(tokens))
	}
	if count := p.CountTokens("  ...  "); count != 0 {
		t.Errorf("expected 0 count for punctuation-only input, got %d", count)
	}
}
